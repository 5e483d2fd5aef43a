package service

import (
	"errors"
	"math"
	"math/rand"
	"sync"
	"time"

	"exam_coach_backend/internal/model"
	"exam_coach_backend/internal/repository"
	"exam_coach_backend/internal/util"
	"exam_coach_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const saveResultRetries = 3

// PracticeService builds practice sessions, checks and scores answers, and
// commits submitted results. Session state lives entirely on the client: the
// service hands out question ids and receives them back with chosen letters.
type PracticeService struct {
	Questions *repository.QuestionRepository
	Attempts  *repository.AttemptRepository
	Progress  *repository.ProgressRepository
	Policies  *PolicyTable
	DB        *gorm.DB

	mu  sync.Mutex
	rng *rand.Rand
}

// NewPracticeService takes the randomness source explicitly so tests can pin
// the sampled question sets.
func NewPracticeService(
	questions *repository.QuestionRepository,
	attempts *repository.AttemptRepository,
	progress *repository.ProgressRepository,
	policies *PolicyTable,
	db *gorm.DB,
	rng *rand.Rand,
) *PracticeService {
	return &PracticeService{
		Questions: questions,
		Attempts:  attempts,
		Progress:  progress,
		Policies:  policies,
		DB:        db,
		rng:       rng,
	}
}

type SessionResponse struct {
	Questions    []model.PracticeQuestion `json:"questions"`
	TotalMinutes int                      `json:"totalMinutes"`
}

type CheckAnswerResult struct {
	Correct       bool               `json:"correct"`
	CorrectLetter model.ChoiceLetter `json:"correctLetter"`
	Explanation   string             `json:"explanation"`
}

type ScoreAnswer struct {
	QuestionID     uint   `json:"questionId"`
	SelectedLetter string `json:"selectedLetter"`
}

type ScoreResponse struct {
	Correct           int     `json:"correct"`
	Total             int     `json:"total"`
	Percentage        float64 `json:"percentage"`
	Passed            bool    `json:"passed"`
	PassingPercentage int     `json:"passingPercentage"`
}

// BuildSession samples up to count active questions for the exam and strips
// every answer-revealing field. The payload handed to the client must never
// contain the answer key.
func (s *PracticeService) BuildSession(examCode string, count int) (*SessionResponse, error) {
	code, policy, ok := s.Policies.Resolve(examCode)
	if !ok {
		return nil, util.ErrUnknownExam
	}

	pool, err := s.Questions.ActiveByExam(code)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, util.ErrNoQuestionsAvailable
	}

	// A non-positive count asks for a full-length session.
	if count <= 0 {
		count = policy.TotalQuestions
	}
	if count <= 0 {
		count = len(pool)
	}

	s.mu.Lock()
	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	s.mu.Unlock()

	// A short pool is returned whole, still shuffled so the bank's insertion
	// order never leaks to the client.
	if count < len(pool) {
		pool = pool[:count]
	}

	questions := make([]model.PracticeQuestion, len(pool))
	for i, q := range pool {
		questions[i] = model.PracticeQuestion{
			ID:       q.ID,
			Question: q.Text,
			Choices:  q.Choices,
		}
	}

	return &SessionResponse{
		Questions:    questions,
		TotalMinutes: scaledMinutes(policy.TimeLimitMinutes, count, policy.TotalQuestions),
	}, nil
}

// scaledMinutes prorates the exam time limit for a partial session, rounded
// to the nearest minute. A full-length (or larger) request gets the full
// limit.
func scaledMinutes(fullMinutes, requested, fullQuestions int) int {
	if fullQuestions <= 0 || requested >= fullQuestions {
		return fullMinutes
	}
	return int(math.Round(float64(fullMinutes) * float64(requested) / float64(fullQuestions)))
}

// CheckAnswer is the learn-mode feedback path: read-only and repeatable, it
// never touches progress. Unknown question or exam mismatch both report
// not-found so the id space of other exams is not probeable.
func (s *PracticeService) CheckAnswer(examCode string, questionID uint, selected model.ChoiceLetter) (*CheckAnswerResult, error) {
	code, _, ok := s.Policies.Resolve(examCode)
	if !ok {
		return nil, util.ErrUnknownExam
	}

	question, err := s.Questions.FindByID(questionID)
	if err != nil {
		return nil, err
	}
	if question == nil || question.ExamCode != code {
		return nil, util.ErrQuestionNotFound
	}

	return &CheckAnswerResult{
		Correct:       question.CorrectLetter == selected,
		CorrectLetter: question.CorrectLetter,
		Explanation:   question.Explanation,
	}, nil
}

// RandomQuestion draws one active question, skipping excluded ids so a drill
// can avoid repeats within a sitting.
func (s *PracticeService) RandomQuestion(examCode string, excludeIDs []uint) (*model.Question, error) {
	code, _, ok := s.Policies.Resolve(examCode)
	if !ok {
		return nil, util.ErrUnknownExam
	}

	pool, err := s.Questions.ActiveByExam(code)
	if err != nil {
		return nil, err
	}

	excluded := make(map[uint]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}

	candidates := pool[:0]
	for _, q := range pool {
		if _, skip := excluded[q.ID]; !skip {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) == 0 {
		return nil, util.ErrNoQuestionsAvailable
	}

	s.mu.Lock()
	picked := candidates[s.rng.Intn(len(candidates))]
	s.mu.Unlock()

	return &picked, nil
}

// Score grades a full submitted answer set. Invalid letters, unknown
// questions, and questions from another exam are excluded from the correct
// tally but still count in the denominator: total is the submission size.
// Pure read; nothing is persisted here.
func (s *PracticeService) Score(examCode string, answers []ScoreAnswer) (*ScoreResponse, error) {
	code, policy, ok := s.Policies.Resolve(examCode)
	if !ok {
		return nil, util.ErrUnknownExam
	}

	correct := 0
	for _, a := range answers {
		letter, ok := model.ParseChoiceLetter(a.SelectedLetter)
		if !ok {
			continue
		}
		question, err := s.Questions.FindByID(a.QuestionID)
		if err != nil {
			// One unreadable answer must not abort scoring the rest.
			logger.Log.Warn("score: question lookup failed",
				zap.Uint("questionId", a.QuestionID), zap.Error(err))
			continue
		}
		if question == nil || question.ExamCode != code {
			continue
		}
		if question.CorrectLetter == letter {
			correct++
		}
	}

	total := len(answers)
	percentage := 0.0
	if total > 0 {
		percentage = float64(correct) * 100.0 / float64(total)
	}

	return &ScoreResponse{
		Correct:           correct,
		Total:             total,
		Percentage:        percentage,
		Passed:            percentage >= float64(policy.PassingPercentage),
		PassingPercentage: policy.PassingPercentage,
	}, nil
}

// SaveResult appends the attempt record and folds the score into the user's
// progress as one transaction; both writes land or neither does. A progress
// version conflict retries the whole transaction.
func (s *PracticeService) SaveResult(userID, examCode string, score *ScoreResponse) error {
	code, _, ok := s.Policies.Resolve(examCode)
	if !ok {
		return util.ErrUnknownExam
	}

	var err error
	for attempt := 0; attempt < saveResultRetries; attempt++ {
		err = s.DB.Transaction(func(tx *gorm.DB) error {
			now := time.Now().UTC()
			record := &model.ExamAttempt{
				UserID:      userID,
				ExamCode:    code,
				Correct:     score.Correct,
				Total:       score.Total,
				Percentage:  score.Percentage,
				Passed:      score.Passed,
				CompletedAt: now,
			}
			if err := s.Attempts.Create(tx, record); err != nil {
				return err
			}

			progress, err := s.Progress.FindByUserAndExam(tx, userID, code)
			if err != nil {
				return err
			}
			if progress == nil {
				progress = &model.UserProgress{UserID: userID, ExamCode: code}
			}
			progress.TotalAsked += score.Total
			progress.Correct += score.Correct
			progress.LastSessionAt = now

			return s.Progress.SaveVersioned(tx, progress)
		})
		if !errors.Is(err, util.ErrProgressConflict) {
			return err
		}
	}
	return err
}

func (s *PracticeService) History(userID string) ([]model.ExamAttempt, error) {
	return s.Attempts.ListByUser(userID)
}

func (s *PracticeService) HistoryByExam(userID, examCode string) ([]model.ExamAttempt, error) {
	code, _, ok := s.Policies.Resolve(examCode)
	if !ok {
		return nil, util.ErrUnknownExam
	}
	return s.Attempts.ListByUserAndExam(userID, code)
}
