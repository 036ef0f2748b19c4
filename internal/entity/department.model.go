package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Department struct {
	gorm.Model
	ID                 uuid.UUID    `json:"id" gorm:"type:uuid;primary_key"`
	CompanyID          uuid.UUID    `json:"company_id" gorm:"type:uuid;not null;index"`
	Name               string       `json:"name" gorm:"type:varchar(100);not null"`
	ParentDepartmentID *uuid.UUID   `json:"parent_department_id" gorm:"type:uuid"`
	Children           []Department `json:"children" gorm:"foreignKey:ParentDepartmentID"`
	Contacts           []Contact    `json:"contacts" gorm:"foreignKey:DepartmentID"`
}

func (d *Department) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
