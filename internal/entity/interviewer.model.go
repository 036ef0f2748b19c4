package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Interviewer associates a user with an interview they are on the panel for.
type Interviewer struct {
	gorm.Model
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	InterviewID uuid.UUID `json:"interview_id" gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null"`
	User        User      `json:"-" gorm:"foreignKey:UserID"`
}

func (i *Interviewer) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
