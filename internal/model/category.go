package model

import "github.com/google/uuid"

type Category struct {
	BaseModel
	Name   string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	Products []Product `json:"products,omitempty" validate:"-"`
}
