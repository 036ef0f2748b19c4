package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationStatusEvent struct {
	gorm.Model
	ID              uuid.UUID         `json:"id" gorm:"type:uuid;primary_key"`
	ApplicationID   uuid.UUID         `json:"application_id" gorm:"type:uuid;not null;index"`
	Status          ApplicationStatus `json:"status" gorm:"type:varchar(20);not null"`
	ChangedByUserID uuid.UUID         `json:"changed_by_user_id" gorm:"type:uuid;not null"`
	Reason          string            `json:"reason" gorm:"type:varchar(255)"`
	NextActionDate  *time.Time        `json:"next_action_date"`
}

func (e *ApplicationStatusEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
