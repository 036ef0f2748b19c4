package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Evaluation struct {
	gorm.Model
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	InterviewID   uuid.UUID `json:"interview_id" gorm:"type:uuid;not null;index"`
	InterviewerID uuid.UUID `json:"interviewer_id" gorm:"type:uuid;not null"`
	Rating        int       `json:"rating"`
	Feedback      string    `json:"feedback" gorm:"type:text"`
}

func (e *Evaluation) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
