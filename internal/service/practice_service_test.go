package service

import (
	"testing"
	"time"

	"exam_coach_backend/internal/model"
	"exam_coach_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSessionSamplesRequestedCount(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db, "SIE", 10, "Regulatory Entities")
	svc := newPracticeService(t, db)

	session, err := svc.BuildSession("SIE", 5)
	require.NoError(t, err)

	assert.Len(t, session.Questions, 5)
	for _, q := range session.Questions {
		assert.NotZero(t, q.ID)
		assert.NotEmpty(t, q.Question)
		assert.Len(t, q.Choices, 4)
	}

	// 5 of 75 outline questions: 105 * 5/75 = 7 minutes.
	assert.Equal(t, 7, session.TotalMinutes)
}

func TestBuildSessionShortPoolReturnsWhole(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db, "SIE", 10)
	svc := newPracticeService(t, db)

	session, err := svc.BuildSession("SIE", 75)
	require.NoError(t, err)

	assert.Len(t, session.Questions, 10)
	// A full-length request keeps the full time limit even when the bank is
	// thinner than the outline.
	assert.Equal(t, 105, session.TotalMinutes)
}

func TestBuildSessionMinutesRounding(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db, "SIE", 30)
	svc := newPracticeService(t, db)

	session, err := svc.BuildSession("SIE", 20)
	require.NoError(t, err)

	// 105 * 20/75 = 28 exactly.
	assert.Equal(t, 28, session.TotalMinutes)
}

func TestScaledMinutes(t *testing.T) {
	assert.Equal(t, 105, scaledMinutes(105, 75, 75))
	assert.Equal(t, 105, scaledMinutes(105, 100, 75))
	assert.Equal(t, 7, scaledMinutes(105, 5, 75))
	assert.Equal(t, 1, scaledMinutes(105, 1, 75))
	assert.Equal(t, 105, scaledMinutes(105, 10, 0))
}

func TestBuildSessionDefaultsToOutlineCount(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db, "SIE", 80)
	svc := newPracticeService(t, db)

	// No count requested: the session is the exam's full outline length.
	session, err := svc.BuildSession("SIE", 0)
	require.NoError(t, err)

	assert.Len(t, session.Questions, 75)
	assert.Equal(t, 105, session.TotalMinutes)
}

func TestBuildSessionNonPositiveCountNeverPanics(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db, "SIE", 10)
	svc := newPracticeService(t, db)

	session, err := svc.BuildSession("SIE", -3)
	require.NoError(t, err)

	// Treated as a full-length request against a thin bank.
	assert.Len(t, session.Questions, 10)
	assert.Equal(t, 105, session.TotalMinutes)
}

func TestBuildSessionUnknownExam(t *testing.T) {
	db := newTestDB(t)
	svc := newPracticeService(t, db)

	_, err := svc.BuildSession("SERIES_99", 10)
	assert.ErrorIs(t, err, util.ErrUnknownExam)
}

func TestBuildSessionEmptyBank(t *testing.T) {
	db := newTestDB(t)
	svc := newPracticeService(t, db)

	_, err := svc.BuildSession("SIE", 10)
	assert.ErrorIs(t, err, util.ErrNoQuestionsAvailable)
}

func TestBuildSessionNeverLeaksAnswers(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db, "SIE", 5)
	svc := newPracticeService(t, db)

	session, err := svc.BuildSession("sie", 5)
	require.NoError(t, err)

	for _, q := range session.Questions {
		for _, choice := range q.Choices {
			assert.NotEmpty(t, choice.Letter)
			assert.NotEmpty(t, choice.Text)
		}
	}
}

func TestCheckAnswer(t *testing.T) {
	db := newTestDB(t)
	questions := seedQuestions(t, db, "SIE", 3)
	svc := newPracticeService(t, db)

	result, err := svc.CheckAnswer("SIE", questions[0].ID, model.ChoiceA)
	require.NoError(t, err)
	assert.True(t, result.Correct)
	assert.Equal(t, model.ChoiceA, result.CorrectLetter)
	assert.NotEmpty(t, result.Explanation)

	result, err = svc.CheckAnswer("SIE", questions[0].ID, model.ChoiceC)
	require.NoError(t, err)
	assert.False(t, result.Correct)
	assert.Equal(t, model.ChoiceA, result.CorrectLetter)

	// Learn-mode feedback never touches progress.
	var count int64
	require.NoError(t, db.Model(&model.UserProgress{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCheckAnswerUnknownQuestion(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db, "SIE", 1)
	svc := newPracticeService(t, db)

	_, err := svc.CheckAnswer("SIE", 9999, model.ChoiceA)
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)
}

func TestCheckAnswerExamMismatch(t *testing.T) {
	db := newTestDB(t)
	series7 := seedQuestions(t, db, "SERIES_7", 1)
	svc := newPracticeService(t, db)

	// A real question checked against the wrong exam looks like a missing
	// one; the caller cannot probe other banks.
	_, err := svc.CheckAnswer("SIE", series7[0].ID, model.ChoiceA)
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)
}

func TestRandomQuestionExcludes(t *testing.T) {
	db := newTestDB(t)
	questions := seedQuestions(t, db, "SIE", 3)
	svc := newPracticeService(t, db)

	exclude := []uint{questions[0].ID, questions[1].ID}
	for i := 0; i < 10; i++ {
		q, err := svc.RandomQuestion("SIE", exclude)
		require.NoError(t, err)
		assert.Equal(t, questions[2].ID, q.ID)
	}

	_, err := svc.RandomQuestion("SIE", []uint{questions[0].ID, questions[1].ID, questions[2].ID})
	assert.ErrorIs(t, err, util.ErrNoQuestionsAvailable)
}

func TestScore(t *testing.T) {
	db := newTestDB(t)
	questions := seedQuestions(t, db, "SIE", 10)
	svc := newPracticeService(t, db)

	answers := make([]ScoreAnswer, 10)
	for i, q := range questions {
		letter := "A"
		if i >= 7 {
			letter = "B"
		}
		answers[i] = ScoreAnswer{QuestionID: q.ID, SelectedLetter: letter}
	}

	score, err := svc.Score("SIE", answers)
	require.NoError(t, err)

	assert.Equal(t, 7, score.Correct)
	assert.Equal(t, 10, score.Total)
	assert.InDelta(t, 70.0, score.Percentage, 0.0001)
	assert.True(t, score.Passed)
	assert.Equal(t, 70, score.PassingPercentage)
}

func TestScoreSkipsInvalidAnswersButCountsThem(t *testing.T) {
	db := newTestDB(t)
	questions := seedQuestions(t, db, "SIE", 2)
	other := seedQuestions(t, db, "SERIES_7", 1)
	svc := newPracticeService(t, db)

	answers := []ScoreAnswer{
		{QuestionID: questions[0].ID, SelectedLetter: "a"},
		{QuestionID: questions[1].ID, SelectedLetter: "E"},
		{QuestionID: 9999, SelectedLetter: "A"},
		{QuestionID: other[0].ID, SelectedLetter: "A"},
	}

	score, err := svc.Score("SIE", answers)
	require.NoError(t, err)

	// Lowercase "a" is valid; bad letter, unknown id, and the wrong-exam
	// question all miss the correct tally yet stay in the denominator.
	assert.Equal(t, 1, score.Correct)
	assert.Equal(t, 4, score.Total)
	assert.InDelta(t, 25.0, score.Percentage, 0.0001)
	assert.False(t, score.Passed)
}

func TestScoreEmptySubmission(t *testing.T) {
	db := newTestDB(t)
	svc := newPracticeService(t, db)

	score, err := svc.Score("SIE", nil)
	require.NoError(t, err)

	assert.Equal(t, 0, score.Total)
	assert.Equal(t, 0.0, score.Percentage)
	assert.False(t, score.Passed)
}

func TestSaveResultWritesAttemptAndProgress(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db, "SIE", 10)
	svc := newPracticeService(t, db)

	score := &ScoreResponse{Correct: 8, Total: 10, Percentage: 80, Passed: true, PassingPercentage: 70}
	require.NoError(t, svc.SaveResult("user-1", "SIE", score))

	attempts, err := svc.History("user-1")
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, "SIE", attempts[0].ExamCode)
	assert.Equal(t, 8, attempts[0].Correct)
	assert.Equal(t, 10, attempts[0].Total)
	assert.InDelta(t, 80.0, attempts[0].Percentage, 0.0001)
	assert.True(t, attempts[0].Passed)
	assert.False(t, attempts[0].CompletedAt.IsZero())

	var progress model.UserProgress
	require.NoError(t, db.Where("user_id = ? AND exam_code = ?", "user-1", "SIE").First(&progress).Error)
	assert.Equal(t, 10, progress.TotalAsked)
	assert.Equal(t, 8, progress.Correct)
}

func TestSaveResultAccumulatesProgress(t *testing.T) {
	db := newTestDB(t)
	svc := newPracticeService(t, db)

	first := &ScoreResponse{Correct: 8, Total: 10, Percentage: 80, Passed: true}
	second := &ScoreResponse{Correct: 3, Total: 10, Percentage: 30, Passed: false}
	require.NoError(t, svc.SaveResult("user-1", "SIE", first))
	require.NoError(t, svc.SaveResult("user-1", "SIE", second))

	var progress model.UserProgress
	require.NoError(t, db.Where("user_id = ? AND exam_code = ?", "user-1", "SIE").First(&progress).Error)
	assert.Equal(t, 20, progress.TotalAsked)
	assert.Equal(t, 11, progress.Correct)

	attempts, err := svc.HistoryByExam("user-1", "SIE")
	require.NoError(t, err)
	assert.Len(t, attempts, 2)
}

func TestHistoryNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := newPracticeService(t, db)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	attempts := []model.ExamAttempt{
		{UserID: "user-1", ExamCode: "SIE", Correct: 5, Total: 10, CompletedAt: base.Add(time.Hour)},
		{UserID: "user-1", ExamCode: "SERIES_7", Correct: 90, Total: 125, CompletedAt: base.Add(2 * time.Hour)},
		{UserID: "user-1", ExamCode: "SIE", Correct: 8, Total: 10, CompletedAt: base},
		{UserID: "user-2", ExamCode: "SIE", Correct: 1, Total: 10, CompletedAt: base.Add(3 * time.Hour)},
	}
	require.NoError(t, db.Create(&attempts).Error)

	history, err := svc.History("user-1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "SERIES_7", history[0].ExamCode)
	assert.Equal(t, base.Add(time.Hour).Unix(), history[1].CompletedAt.Unix())
	assert.Equal(t, base.Unix(), history[2].CompletedAt.Unix())

	byExam, err := svc.HistoryByExam("user-1", "SIE")
	require.NoError(t, err)
	require.Len(t, byExam, 2)
	assert.Equal(t, base.Add(time.Hour).Unix(), byExam[0].CompletedAt.Unix())
	assert.Equal(t, base.Unix(), byExam[1].CompletedAt.Unix())
}

func TestHistoryByExamNormalizesCode(t *testing.T) {
	db := newTestDB(t)
	svc := newPracticeService(t, db)

	score := &ScoreResponse{Correct: 90, Total: 125, Percentage: 72, Passed: true}
	require.NoError(t, svc.SaveResult("user-1", "series7", score))

	attempts, err := svc.HistoryByExam("user-1", "SERIES7")
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, "SERIES_7", attempts[0].ExamCode)

	_, err = svc.HistoryByExam("user-1", "SERIES_3000")
	assert.ErrorIs(t, err, util.ErrUnknownExam)
}
