package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Candidate struct {
	gorm.Model
	ID              uuid.UUID     `json:"id" gorm:"type:uuid;primary_key"`
	FirstName       string        `json:"first_name" gorm:"type:varchar(100)"`
	LastName        string        `json:"last_name" gorm:"type:varchar(100)"`
	Email           string        `json:"email" gorm:"type:varchar(100);uniqueIndex;not null"`
	Phone           string        `json:"phone" gorm:"type:varchar(50)"`
	Address         string        `json:"address" gorm:"type:text"`
	LinkedinProfile string        `json:"linkedin_profile" gorm:"type:varchar(255)"`
	JobTitle        string        `json:"job_title" gorm:"type:varchar(100)"`
	CreatedByUserID *uuid.UUID    `json:"created_by_user_id" gorm:"type:uuid;index"`
	CreatedBy       *User         `json:"-" gorm:"foreignKey:CreatedByUserID"`
	Applications    []Application `json:"-" gorm:"foreignKey:CandidateID"`
	Resumes         []Resume      `json:"-" gorm:"foreignKey:CandidateID"`
}

func (c *Candidate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
