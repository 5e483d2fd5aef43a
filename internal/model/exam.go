package model

// Exam is the reference record for one licensing exam. Seeded from the policy
// configuration at startup and never mutated by request handling.
// swagger:model Exam
type Exam struct {
	BaseModel
	Code              string `gorm:"size:20;uniqueIndex;not null" json:"code"`
	Name              string `gorm:"size:255;not null" json:"name"`
	OutlineVersion    string `gorm:"size:50" json:"outlineVersion"`
	TotalQuestions    int    `gorm:"not null" json:"totalQuestionsInOutline"`
	TimeLimitMinutes  int    `gorm:"not null" json:"timeLimitMinutes"`
	PassingPercentage int    `gorm:"not null" json:"passingPercentage"`
}

func (Exam) TableName() string {
	return "exams"
}
