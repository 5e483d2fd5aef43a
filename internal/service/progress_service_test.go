package service

import (
	"sync"
	"testing"

	"exam_coach_backend/internal/model"
	"exam_coach_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAnswerCorrect(t *testing.T) {
	db := newTestDB(t)
	questions := seedQuestions(t, db, "SIE", 1, "Debt Securities")
	svc := newProgressService(t, db)

	correct, err := svc.RecordAnswer("user-1", questions[0].ID, model.ChoiceA)
	require.NoError(t, err)
	assert.True(t, correct)

	progress, err := svc.GetProgress("user-1", "SIE")
	require.NoError(t, err)
	assert.Equal(t, 1, progress.TotalAsked)
	assert.Equal(t, 1, progress.Correct)
	assert.Empty(t, progress.WeakTopics)
	assert.False(t, progress.LastSessionAt.IsZero())
}

func TestRecordAnswerMissBumpsWeakTopic(t *testing.T) {
	db := newTestDB(t)
	questions := seedQuestions(t, db, "SIE", 1, "Options")
	svc := newProgressService(t, db)

	for i := 0; i < 3; i++ {
		correct, err := svc.RecordAnswer("user-1", questions[0].ID, model.ChoiceB)
		require.NoError(t, err)
		assert.False(t, correct)
	}

	progress, err := svc.GetProgress("user-1", "SIE")
	require.NoError(t, err)
	assert.Equal(t, 3, progress.TotalAsked)
	assert.Equal(t, 0, progress.Correct)
	require.Len(t, progress.WeakTopics, 1)
	assert.Equal(t, "Options", progress.WeakTopics[0].Topic)
	assert.Equal(t, 3, progress.WeakTopics[0].MissCount)
}

func TestRecordAnswerMissWithoutTopic(t *testing.T) {
	db := newTestDB(t)
	questions := seedQuestions(t, db, "SIE", 1)
	svc := newProgressService(t, db)

	_, err := svc.RecordAnswer("user-1", questions[0].ID, model.ChoiceD)
	require.NoError(t, err)

	progress, err := svc.GetProgress("user-1", "SIE")
	require.NoError(t, err)
	assert.Equal(t, 1, progress.TotalAsked)
	assert.Empty(t, progress.WeakTopics)
}

func TestRecordAnswerUnknownQuestion(t *testing.T) {
	db := newTestDB(t)
	svc := newProgressService(t, db)

	correct, err := svc.RecordAnswer("user-1", 9999, model.ChoiceA)
	require.NoError(t, err)
	assert.False(t, correct)

	// Nothing was asked, so nothing may be recorded.
	var count int64
	require.NoError(t, db.Model(&model.UserProgress{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRecordAnswerConcurrentNoLostUpdate(t *testing.T) {
	db := newTestDB(t)
	questions := seedQuestions(t, db, "SIE", 1, "Trading")
	svc := newProgressService(t, db)

	const workers = 4
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.RecordAnswer("user-1", questions[0].ID, model.ChoiceB)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	progress, err := svc.GetProgress("user-1", "SIE")
	require.NoError(t, err)
	assert.Equal(t, workers, progress.TotalAsked)
	require.Len(t, progress.WeakTopics, 1)
	assert.Equal(t, workers, progress.WeakTopics[0].MissCount)
}

func TestGetProgressDefaultIsNotPersisted(t *testing.T) {
	db := newTestDB(t)
	svc := newProgressService(t, db)

	progress, err := svc.GetProgress("user-1", "sie")
	require.NoError(t, err)
	assert.Equal(t, "SIE", progress.ExamCode)
	assert.Zero(t, progress.TotalAsked)
	assert.Zero(t, progress.Correct)
	assert.NotNil(t, progress.WeakTopics)
	assert.Empty(t, progress.WeakTopics)

	var count int64
	require.NoError(t, db.Model(&model.UserProgress{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetProgressUnknownExam(t *testing.T) {
	db := newTestDB(t)
	svc := newProgressService(t, db)

	_, err := svc.GetProgress("user-1", "SERIES_99")
	assert.ErrorIs(t, err, util.ErrUnknownExam)
}
