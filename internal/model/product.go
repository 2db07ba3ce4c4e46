package model

import "github.com/google/uuid"

// Product is a catalog entry. Value is integer cents. UseQuantity marks
// products sold by count; Quantity is the optional tracked stock for those.
type Product struct {
	BaseModel
	Name        string     `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Value       int64      `gorm:"not null" json:"value" validate:"gte=0"`
	UseQuantity bool       `gorm:"default:false" json:"use_quantity"`
	Quantity    *int       `json:"quantity,omitempty"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Category    *Category  `json:"category,omitempty" validate:"-"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
}
