package model

import (
	"time"

	"github.com/google/uuid"
)

// Order is a purchase record. ClientID is nil for walk-in ("avulso")
// customers, who are identified by ClientName only and never participate
// in balance computations.
type Order struct {
	BaseModel
	Date       time.Time  `gorm:"not null;index" json:"date"`
	ClientID   *uuid.UUID `gorm:"type:uuid;index" json:"client_id,omitempty"`
	Client     *Client    `json:"client,omitempty" validate:"-"`
	ClientName string     `gorm:"type:varchar(255);not null" json:"client_name" validate:"required"`
	Concluded  bool       `gorm:"default:false" json:"concluded"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`

	OrderProducts []OrderProduct `json:"order_products" validate:"-"`
}

// OrderProduct is one order line. ProductName and Price are snapshots taken
// at creation time: later catalog changes never rewrite recorded orders.
type OrderProduct struct {
	BaseModel
	OrderID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID   *uuid.UUID `gorm:"type:uuid;index" json:"product_id,omitempty"`
	Product     *Product   `json:"product,omitempty" validate:"-"`
	ProductName string     `gorm:"type:varchar(255);not null" json:"product_name" validate:"required"`
	Quantity    int        `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	Price       int64      `gorm:"not null" json:"price" validate:"gte=0"`
}
