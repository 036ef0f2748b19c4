package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	ApplicationStatusApplied   ApplicationStatus = "applied"
	ApplicationStatusScreening ApplicationStatus = "screening"
	ApplicationStatusInterview ApplicationStatus = "interview"
	ApplicationStatusOffer     ApplicationStatus = "offer"
	ApplicationStatusHired     ApplicationStatus = "hired"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusScreening, ApplicationStatusInterview,
		ApplicationStatusOffer, ApplicationStatusHired, ApplicationStatusRejected:
		return true
	}
	return false
}

type Application struct {
	gorm.Model
	ID            uuid.UUID                `json:"id" gorm:"type:uuid;primary_key"`
	JobID         uuid.UUID                `json:"job_id" gorm:"type:uuid;not null;index"`
	Job           Job                      `json:"-" gorm:"foreignKey:JobID"`
	CandidateID   uuid.UUID                `json:"candidate_id" gorm:"type:uuid;not null;index"`
	Candidate     Candidate                `json:"-" gorm:"foreignKey:CandidateID"`
	AppliedAt     time.Time                `json:"applied_at"`
	Source        string                   `json:"source" gorm:"type:varchar(100)"`
	StatusHistory []ApplicationStatusEvent `json:"status_history" gorm:"foreignKey:ApplicationID"`
	Interviews    []Interview              `json:"-" gorm:"foreignKey:ApplicationID"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.AppliedAt.IsZero() {
		a.AppliedAt = time.Now().UTC()
	}
	return nil
}
