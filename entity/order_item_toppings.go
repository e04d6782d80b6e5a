package entity

import (
	"gorm.io/gorm"
)

type OrderItemTopping struct {
	gorm.Model
	OrderItemID uint `json:"orderItemId"`

	ToppingID uint   `json:"toppingId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
}
