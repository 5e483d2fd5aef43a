package repository

import (
	"exam_coach_backend/internal/model"

	"gorm.io/gorm"
)

type ExamRepository struct {
	DB *gorm.DB
}

func NewExamRepository(db *gorm.DB) *ExamRepository {
	return &ExamRepository{DB: db}
}

func (r *ExamRepository) FindAll() ([]model.Exam, error) {
	var exams []model.Exam
	err := r.DB.Order("code").Find(&exams).Error
	return exams, err
}

func (r *ExamRepository) FindByCode(code string) (*model.Exam, error) {
	var exam model.Exam
	err := r.DB.Where("code = ?", code).First(&exam).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *ExamRepository) Create(exam *model.Exam) error {
	return r.DB.Create(exam).Error
}
