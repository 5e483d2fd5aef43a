package service

import (
	"errors"
	"time"

	"exam_coach_backend/internal/model"
	"exam_coach_backend/internal/repository"
	"exam_coach_backend/internal/util"

	"gorm.io/gorm"
)

const recordAnswerRetries = 5

// ProgressService owns the per-(user, exam) running statistics.
type ProgressService struct {
	Questions *repository.QuestionRepository
	Progress  *repository.ProgressRepository
	Policies  *PolicyTable
	DB        *gorm.DB
}

func NewProgressService(
	questions *repository.QuestionRepository,
	progress *repository.ProgressRepository,
	policies *PolicyTable,
	db *gorm.DB,
) *ProgressService {
	return &ProgressService{
		Questions: questions,
		Progress:  progress,
		Policies:  policies,
		DB:        db,
	}
}

// RecordAnswer checks the answer and folds it into the user's progress for
// the question's exam: totalAsked always increments, correct increments on a
// hit, and a miss on a topical question bumps that topic's miss count.
//
// An unknown question id deliberately reports false with no error, so a
// drill never fails mid-session. The caller cannot tell a wrong answer from
// a missing question on this path; check-answer is the endpoint that can.
//
// The read-modify-write runs under an optimistic version check: on conflict
// the row is reloaded and the deltas reapplied, so two concurrent calls for
// the same (userId, examCode) both land.
func (s *ProgressService) RecordAnswer(userID string, questionID uint, selected model.ChoiceLetter) (bool, error) {
	question, err := s.Questions.FindByID(questionID)
	if err != nil {
		return false, err
	}
	if question == nil {
		return false, nil
	}

	correct := question.CorrectLetter == selected

	for attempt := 0; attempt < recordAnswerRetries; attempt++ {
		progress, err := s.Progress.FindByUserAndExam(s.DB, userID, question.ExamCode)
		if err != nil {
			return false, err
		}
		if progress == nil {
			progress = &model.UserProgress{UserID: userID, ExamCode: question.ExamCode}
		}

		progress.TotalAsked++
		if correct {
			progress.Correct++
		} else {
			progress.BumpWeakTopic(question.Topic)
		}
		progress.LastSessionAt = time.Now().UTC()

		err = s.Progress.SaveVersioned(s.DB, progress)
		if err == nil {
			return correct, nil
		}
		if !errors.Is(err, util.ErrProgressConflict) {
			return false, err
		}
	}
	return false, util.ErrProgressConflict
}

// GetProgress returns the stored row, or a zeroed record when the user has
// not answered anything on that exam yet. The default is never persisted.
func (s *ProgressService) GetProgress(userID, examCode string) (*model.UserProgress, error) {
	code, _, ok := s.Policies.Resolve(examCode)
	if !ok {
		return nil, util.ErrUnknownExam
	}

	progress, err := s.Progress.FindByUserAndExam(s.DB, userID, code)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		progress = &model.UserProgress{
			UserID:     userID,
			ExamCode:   code,
			WeakTopics: []model.WeakTopic{},
		}
	}
	return progress, nil
}
