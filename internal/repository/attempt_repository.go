package repository

import (
	"exam_coach_backend/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) Create(db *gorm.DB, attempt *model.ExamAttempt) error {
	return db.Create(attempt).Error
}

func (r *AttemptRepository) ListByUser(userID string) ([]model.ExamAttempt, error) {
	var attempts []model.ExamAttempt
	err := r.DB.Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *AttemptRepository) ListByUserAndExam(userID, examCode string) ([]model.ExamAttempt, error) {
	var attempts []model.ExamAttempt
	err := r.DB.Where("user_id = ? AND exam_code = ?", userID, examCode).
		Order("completed_at DESC").
		Find(&attempts).Error
	return attempts, err
}
