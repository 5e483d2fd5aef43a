package model

import "time"

// ExamAttempt is one committed, scored submission. Append-only.
// swagger:model ExamAttempt
type ExamAttempt struct {
	BaseModel
	UserID      string    `gorm:"size:64;not null;index" json:"userId"`
	ExamCode    string    `gorm:"size:20;not null;index" json:"examCode"`
	Correct     int       `gorm:"not null" json:"correct"`
	Total       int       `gorm:"not null" json:"total"`
	Percentage  float64   `gorm:"not null" json:"percentage"`
	Passed      bool      `gorm:"not null" json:"passed"`
	CompletedAt time.Time `gorm:"index;not null" json:"completedAt"`
}

func (ExamAttempt) TableName() string {
	return "exam_attempts"
}
