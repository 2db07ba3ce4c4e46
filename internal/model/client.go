package model

import "github.com/google/uuid"

// Client is a registered customer. Client names are unique per owner;
// orders may still reference walk-in ("avulso") customers by free-text
// name without a Client row.
type Client struct {
	BaseModel
	Name    string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_clients_name_user" json:"name" validate:"required"`
	UserID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_clients_name_user" json:"user_id"`
	GroupID *uuid.UUID `gorm:"type:uuid;index" json:"group_id,omitempty"`
	Group   *Group     `json:"group,omitempty" validate:"-"`

	Chips  []Chip  `json:"chips,omitempty" validate:"-"`
	Orders []Order `json:"orders,omitempty" validate:"-"`
}
