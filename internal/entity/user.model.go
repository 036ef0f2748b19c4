package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	CompanyID    uuid.UUID  `json:"company_id" gorm:"type:uuid;not null;index"`
	Company      Company    `json:"-" gorm:"foreignKey:CompanyID"`
	Email        string     `json:"email" gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"type:varchar(255);not null"`
	FirstName    string     `json:"first_name" gorm:"type:varchar(100)"`
	LastName     string     `json:"last_name" gorm:"type:varchar(100)"`
	RoleID       uuid.UUID  `json:"role_id" gorm:"type:uuid;not null"`
	Role         Role       `json:"-" gorm:"foreignKey:RoleID"`
	// Set for candidate self-service accounts, nil for recruiters.
	CandidateID *uuid.UUID `json:"candidate_id,omitempty" gorm:"type:uuid"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
