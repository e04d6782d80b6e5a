package entity

import (
	"gorm.io/gorm"
)

type OrderType string

const (
	OrderTypeDelivery OrderType = "delivery"
	OrderTypePickup   OrderType = "pickup"
)

// Order is a frozen snapshot of a cart at checkout time. Later cart
// mutations never touch a placed order. Orders are never deleted.
type Order struct {
	gorm.Model
	Number string `gorm:"uniqueIndex;size:36" json:"number"`

	UserID uint `json:"userId"`
	User   User `json:"-"` // preload only for staff detail views

	Type   OrderType   `json:"type"`
	Status OrderStatus `gorm:"index" json:"status"`

	Subtotal    int64 `json:"subtotal"`
	Tax         int64 `json:"tax"`
	DeliveryFee int64 `json:"deliveryFee"`
	Tip         int64 `json:"tip"`
	Total       int64 `json:"total"`

	Address string `json:"address"` // snapshot, empty for pickup
	Note    string `json:"note"`

	Items   []OrderItem `json:"items"`
	Payment *Payment    `json:"payment,omitempty"`
}
