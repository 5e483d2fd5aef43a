package model

import "time"

type WeakTopic struct {
	Topic     string `json:"topic"`
	MissCount int    `json:"missCount"`
}

// UserProgress is the running tally for one (userId, examCode) pair. The row
// is created lazily on the first recorded answer or saved result and updated
// with a version check so concurrent writers cannot lose an increment.
// swagger:model UserProgress
type UserProgress struct {
	BaseModel
	UserID        string      `gorm:"size:64;not null;uniqueIndex:idx_progress_user_exam" json:"userId"`
	ExamCode      string      `gorm:"size:20;not null;uniqueIndex:idx_progress_user_exam" json:"examCode"`
	TotalAsked    int         `gorm:"default:0" json:"totalAsked"`
	Correct       int         `gorm:"default:0" json:"correct"`
	LastSessionAt time.Time   `json:"lastSessionAt"`
	WeakTopics    []WeakTopic `gorm:"type:json;serializer:json" json:"weakTopics"`
	Version       int         `gorm:"default:0" json:"-"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

// BumpWeakTopic increments the miss count for topic, inserting the entry on
// first miss. No-op for an empty topic.
func (p *UserProgress) BumpWeakTopic(topic string) {
	if topic == "" {
		return
	}
	for i := range p.WeakTopics {
		if p.WeakTopics[i].Topic == topic {
			p.WeakTopics[i].MissCount++
			return
		}
	}
	p.WeakTopics = append(p.WeakTopics, WeakTopic{Topic: topic, MissCount: 1})
}
