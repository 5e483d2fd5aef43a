package model

import "strings"

// ChoiceLetter identifies one of the four multiple-choice options.
type ChoiceLetter string

const (
	ChoiceA ChoiceLetter = "A"
	ChoiceB ChoiceLetter = "B"
	ChoiceC ChoiceLetter = "C"
	ChoiceD ChoiceLetter = "D"
)

// ParseChoiceLetter accepts a/A..d/D; anything else is rejected.
func ParseChoiceLetter(s string) (ChoiceLetter, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return ChoiceA, true
	case "B":
		return ChoiceB, true
	case "C":
		return ChoiceC, true
	case "D":
		return ChoiceD, true
	default:
		return "", false
	}
}

type Choice struct {
	Letter ChoiceLetter `json:"letter"`
	Text   string       `json:"text"`
}

// Question is one bank entry. Choices always cover A-D exactly once and
// CorrectLetter is one of them; the bank tooling guarantees that, the engine
// only reads.
// swagger:model Question
type Question struct {
	BaseModel
	ExamCode      string       `gorm:"size:20;not null;index:idx_questions_exam_active" json:"examCode"`
	Text          string       `gorm:"type:text;not null" json:"question"`
	Choices       []Choice     `gorm:"type:json;serializer:json" json:"choices"`
	CorrectLetter ChoiceLetter `gorm:"size:1;not null" json:"correctLetter"`
	Explanation   string       `gorm:"type:text" json:"explanation"`
	Topic         string       `gorm:"size:100" json:"topic,omitempty"`
	Difficulty    string       `gorm:"size:10" json:"difficulty,omitempty"`
	Source        string       `gorm:"size:50" json:"source,omitempty"`
	Active        bool         `gorm:"default:true;index:idx_questions_exam_active" json:"active"`
}

func (Question) TableName() string {
	return "questions"
}

// PracticeQuestion is the client-safe projection handed out in a practice
// session: no correct letter, no explanation.
type PracticeQuestion struct {
	ID       uint     `json:"id"`
	Question string   `json:"question"`
	Choices  []Choice `json:"choices"`
}
