package service

import (
	"fmt"
	"math/rand"
	"testing"

	"exam_coach_backend/internal/config"
	"exam_coach_backend/internal/model"
	"exam_coach_backend/internal/repository"
	"exam_coach_backend/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	logger.Log = zap.NewNop()
}

// newTestDB opens a named in-memory sqlite database. The shared cache plus a
// single connection keeps every goroutine in the test on the same store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.Exam{},
		&model.Question{},
		&model.UserProgress{},
		&model.ExamAttempt{},
	))

	return db
}

func testPolicies() *PolicyTable {
	return NewPolicyTable([]config.ExamPolicy{
		{Code: "SIE", Name: "Securities Industry Essentials", TotalQuestions: 75, TimeLimitMinutes: 105, PassingPercentage: 70},
		{Code: "SERIES_7", Name: "General Securities Representative", TotalQuestions: 125, TimeLimitMinutes: 225, PassingPercentage: 72},
	})
}

// seedQuestions inserts n active SIE questions whose correct letter is always
// A, topics cycling through the given list.
func seedQuestions(t *testing.T, db *gorm.DB, examCode string, n int, topics ...string) []model.Question {
	t.Helper()

	questions := make([]model.Question, n)
	for i := range questions {
		topic := ""
		if len(topics) > 0 {
			topic = topics[i%len(topics)]
		}
		questions[i] = model.Question{
			ExamCode: examCode,
			Text:     fmt.Sprintf("%s question %d", examCode, i+1),
			Choices: []model.Choice{
				{Letter: model.ChoiceA, Text: "right"},
				{Letter: model.ChoiceB, Text: "wrong"},
				{Letter: model.ChoiceC, Text: "wrong"},
				{Letter: model.ChoiceD, Text: "wrong"},
			},
			CorrectLetter: model.ChoiceA,
			Explanation:   "A is always right in fixtures",
			Topic:         topic,
			Active:        true,
		}
	}
	require.NoError(t, db.Create(&questions).Error)
	return questions
}

func newPracticeService(t *testing.T, db *gorm.DB) *PracticeService {
	t.Helper()
	return NewPracticeService(
		repository.NewQuestionRepository(db, nil),
		repository.NewAttemptRepository(db),
		repository.NewProgressRepository(db),
		testPolicies(),
		db,
		rand.New(rand.NewSource(1)),
	)
}

func newProgressService(t *testing.T, db *gorm.DB) *ProgressService {
	t.Helper()
	return NewProgressService(
		repository.NewQuestionRepository(db, nil),
		repository.NewProgressRepository(db),
		testPolicies(),
		db,
	)
}
