package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Company struct {
	gorm.Model
	ID          uuid.UUID    `json:"id" gorm:"type:uuid;primary_key"`
	Name        string       `json:"name" gorm:"type:varchar(100);not null"`
	Industry    string       `json:"industry" gorm:"type:varchar(100)"`
	Users       []User       `json:"-" gorm:"foreignKey:CompanyID"`
	Jobs        []Job        `json:"-" gorm:"foreignKey:CompanyID"`
	Departments []Department `json:"-" gorm:"foreignKey:CompanyID"`
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
