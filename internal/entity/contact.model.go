package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Contact struct {
	gorm.Model
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	CompanyID    uuid.UUID  `json:"company_id" gorm:"type:uuid;not null;index"`
	DepartmentID *uuid.UUID `json:"department_id" gorm:"type:uuid"`
	Name         string     `json:"name" gorm:"type:varchar(100);not null"`
	Email        string     `json:"email" gorm:"type:varchar(100)"`
	Phone        string     `json:"phone" gorm:"type:varchar(50)"`
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
