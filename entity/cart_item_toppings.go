package entity

import (
	"gorm.io/gorm"
)

// CartItemTopping records a chosen topping and its price at add time.
type CartItemTopping struct {
	gorm.Model
	CartItemID uint `json:"cartItemId"`

	ToppingID uint    `json:"toppingId"`
	Topping   Topping `json:"-"`

	Price int64 `json:"price"`
}
