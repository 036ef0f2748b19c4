package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InterviewType string

const (
	InterviewTypePhone  InterviewType = "phone"
	InterviewTypeVideo  InterviewType = "video"
	InterviewTypeOnsite InterviewType = "onsite"
)

func (t InterviewType) Valid() bool {
	switch t {
	case InterviewTypePhone, InterviewTypeVideo, InterviewTypeOnsite:
		return true
	}
	return false
}

type Interview struct {
	gorm.Model
	ID              uuid.UUID     `json:"id" gorm:"type:uuid;primary_key"`
	ApplicationID   uuid.UUID     `json:"application_id" gorm:"type:uuid;not null;index"`
	Application     Application   `json:"-" gorm:"foreignKey:ApplicationID"`
	ScheduledAt     time.Time     `json:"scheduled_at"`
	DurationMinutes int           `json:"duration_minutes"`
	InterviewType   InterviewType `json:"interview_type" gorm:"type:varchar(20)"`
	Interviewers    []Interviewer `json:"interviewers" gorm:"foreignKey:InterviewID"`
	Evaluations     []Evaluation  `json:"evaluations" gorm:"foreignKey:InterviewID"`
}

func (i *Interview) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
