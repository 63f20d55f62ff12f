package model

import "time"

// FormRegister is a training registration submitted from the public site.
type FormRegister struct {
	ID              int64      `gorm:"column:id;primaryKey" json:"id"`
	FullName        string     `gorm:"column:full_name" json:"full_name"`
	Email           string     `gorm:"column:email" json:"email"`
	PhoneNumber     *string    `gorm:"column:phone_number" json:"phone_number"`
	Company         *string    `gorm:"column:company" json:"company"`
	TrainingProgram *string    `gorm:"column:training_program" json:"training_program"`
	Note            *string    `gorm:"column:note" json:"note"`
	Status          *string    `gorm:"column:status" json:"status"`
	CreatedAt       time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt       *time.Time `gorm:"column:deleted_at" json:"-"`
}

func (FormRegister) TableName() string {
	return "form_registers"
}
