package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	PizzaID uint  `json:"pizzaId"`
	Pizza   Pizza `json:"-"` // preload when the line needs a name

	SizeID uint      `json:"sizeId"`
	Size   PizzaSize `json:"-"`

	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"` // round(base*multiplier) + toppings, at add time
	Total     int64  `json:"total"`     // UnitPrice * Qty
	Note      string `json:"note"`

	Toppings []CartItemTopping `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"toppings"`
}
