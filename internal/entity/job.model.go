package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobStatus string

const (
	JobStatusDraft  JobStatus = "draft"
	JobStatusOpen   JobStatus = "open"
	JobStatusPaused JobStatus = "paused"
	JobStatusFilled JobStatus = "filled"
	JobStatusClosed JobStatus = "closed"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusDraft, JobStatusOpen, JobStatusPaused, JobStatusFilled, JobStatusClosed:
		return true
	}
	return false
}

// JobPayload is the detailed posting document stored in the job's data column.
type JobPayload struct {
	JobID            string           `json:"jobId" binding:"required"`
	Descriptions     []JobDescription `json:"descriptions" binding:"required,min=1"`
	Location         LocationInfo     `json:"location" binding:"required"`
	EmploymentType   string           `json:"employmentType" binding:"required"`
	Responsibilities []string         `json:"responsibilities" binding:"required"`
	Requirements     []Requirement    `json:"requirements,omitempty"`
	NiceToHaves      []Requirement    `json:"niceToHaves,omitempty"`
	Department       string           `json:"department,omitempty"`
	ExperienceLevel  string           `json:"experienceLevel,omitempty"`
	Compensation     *Compensation    `json:"compensation,omitempty"`
	PostedDate       *time.Time       `json:"postedDate,omitempty"`
	ClosingDate      *time.Time       `json:"closingDate,omitempty"`
	ApplyURL         string           `json:"applyUrl,omitempty"`
	InterviewProcess []InterviewStep  `json:"interviewProcess,omitempty"`
	HiringManager    *HiringManager   `json:"hiringManager,omitempty"`
	Openings         int              `json:"openings,omitempty"`
}

type JobDescription struct {
	Text           string `json:"text" binding:"required"`
	Goal           string `json:"goal,omitempty"`
	TargetPlatform string `json:"target_platform,omitempty"`
	Language       string `json:"language,omitempty"`
}

type LocationInfo struct {
	Type         string            `json:"type" binding:"required"`
	Address      map[string]string `json:"address,omitempty"`
	RemotePolicy string            `json:"remotePolicy,omitempty"`
}

type Requirement struct {
	Description string `json:"description"`
	Weight      int    `json:"weight,omitempty"`
}

type Compensation struct {
	Type      string   `json:"type"`
	Currency  string   `json:"currency"`
	MinAmount *float64 `json:"minAmount,omitempty"`
	MaxAmount *float64 `json:"maxAmount,omitempty"`
	Summary   string   `json:"summary,omitempty"`
}

type InterviewStep struct {
	Step        int    `json:"step"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

type HiringManager struct {
	UserID uuid.UUID `json:"userId"`
	Name   string    `json:"name,omitempty"`
}

type Job struct {
	gorm.Model
	ID            uuid.UUID        `json:"id" gorm:"type:uuid;primary_key"`
	CompanyID     uuid.UUID        `json:"company_id" gorm:"type:uuid;not null;index"`
	Company       Company          `json:"company" gorm:"foreignKey:CompanyID"`
	Data          JobPayload       `json:"data" gorm:"serializer:json"`
	Applications  []Application    `json:"-" gorm:"foreignKey:JobID"`
	StatusHistory []JobStatusEvent `json:"status_history" gorm:"foreignKey:JobID"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}
