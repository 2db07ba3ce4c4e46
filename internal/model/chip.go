package model

import (
	"time"

	"github.com/google/uuid"
)

// Chip is a prepaid credit voucher of fixed value attributed to a client.
// Value is integer cents and immutable once recorded: chips are created and
// deleted, never edited.
type Chip struct {
	BaseModel
	Value    int64     `gorm:"not null" json:"value" validate:"gte=0"`
	Date     time.Time `gorm:"not null" json:"date"`
	ClientID uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id" validate:"uuid_required"`
	Client   *Client   `json:"client,omitempty" validate:"-"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
}
