package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"exam_coach_backend/internal/model"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const questionPoolTTL = 5 * time.Minute

type QuestionRepository struct {
	DB  *gorm.DB
	RDB *redis.Client
}

func NewQuestionRepository(db *gorm.DB, rdb *redis.Client) *QuestionRepository {
	return &QuestionRepository{DB: db, RDB: rdb}
}

// ActiveByExam returns the active question pool for an exam. The pool changes
// rarely, so it is cached in redis for a few minutes when redis is wired.
func (r *QuestionRepository) ActiveByExam(examCode string) ([]model.Question, error) {
	ctx := context.Background()
	cacheKey := "coach:questions:" + examCode

	if r.RDB != nil {
		if cached, err := r.RDB.Get(ctx, cacheKey).Bytes(); err == nil {
			var questions []model.Question
			if err := json.Unmarshal(cached, &questions); err == nil {
				return questions, nil
			}
		}
	}

	var questions []model.Question
	err := r.DB.Where("exam_code = ? AND active = ?", examCode, true).Find(&questions).Error
	if err != nil {
		return nil, err
	}

	if r.RDB != nil {
		if data, err := json.Marshal(questions); err == nil {
			r.RDB.Set(ctx, cacheKey, data, questionPoolTTL)
		}
	}

	return questions, nil
}

// FindByID returns (nil, nil) for an unknown id; storage failures come back
// as errors.
func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	err := r.DB.First(&question, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}
