package model

import "github.com/google/uuid"

// Group is a named bucket of clients (a table, a team, a tab of regulars).
type Group struct {
	BaseModel
	Name   string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	Clients []Client `json:"clients,omitempty" validate:"-"`
}
