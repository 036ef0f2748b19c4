package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobStatusEvent is an append-only audit row: jobs never store a live status
// column, the latest event wins.
type JobStatusEvent struct {
	gorm.Model
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	JobID           uuid.UUID `json:"job_id" gorm:"type:uuid;not null;index"`
	Status          JobStatus `json:"status" gorm:"type:varchar(20);not null"`
	ChangedByUserID uuid.UUID `json:"changed_by_user_id" gorm:"type:uuid;not null"`
	Reason          string    `json:"reason" gorm:"type:varchar(255)"`
}

func (e *JobStatusEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
