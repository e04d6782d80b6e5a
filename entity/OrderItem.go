package entity

import (
	"gorm.io/gorm"
)

// OrderItem copies name and price fields so the order survives later
// catalog edits.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	PizzaID   uint   `json:"pizzaId"`
	PizzaName string `json:"pizzaName"`
	SizeName  string `json:"sizeName"`

	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"`
	Total     int64  `json:"total"`
	Note      string `json:"note"`

	Toppings []OrderItemTopping `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"toppings"`
}
