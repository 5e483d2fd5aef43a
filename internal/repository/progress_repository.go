package repository

import (
	"errors"

	"exam_coach_backend/internal/model"
	"exam_coach_backend/internal/util"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// FindByUserAndExam returns (nil, nil) when no row exists yet.
func (r *ProgressRepository) FindByUserAndExam(db *gorm.DB, userID, examCode string) (*model.UserProgress, error) {
	var progress model.UserProgress
	err := db.Where("user_id = ? AND exam_code = ?", userID, examCode).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// SaveVersioned writes the row with optimistic concurrency. A fresh row
// (ID == 0) is inserted; racing inserts for the same (userId, examCode) hit
// the unique index and surface as ErrProgressConflict. An existing row is
// updated only if its version is unchanged since the read; otherwise
// ErrProgressConflict tells the caller to reload and retry.
func (r *ProgressRepository) SaveVersioned(db *gorm.DB, progress *model.UserProgress) error {
	if progress.ID == 0 {
		progress.Version = 1
		err := db.Create(progress).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return util.ErrProgressConflict
		}
		return err
	}

	readVersion := progress.Version
	progress.Version = readVersion + 1

	result := db.Model(&model.UserProgress{}).
		Where("id = ? AND version = ?", progress.ID, readVersion).
		Select("total_asked", "correct", "last_session_at", "weak_topics", "version").
		Updates(progress)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return util.ErrProgressConflict
	}
	return nil
}
