package entity

import (
	"gorm.io/gorm"
)

type ToppingCategory string

const (
	ToppingMeat      ToppingCategory = "meat"
	ToppingVegetable ToppingCategory = "vegetable"
	ToppingCheese    ToppingCategory = "cheese"
	ToppingSauce     ToppingCategory = "sauce"
)

// Topping is a flat per-topping surcharge in cents, size-independent.
type Topping struct {
	gorm.Model
	Name     string          `gorm:"uniqueIndex;not null" json:"name"`
	Price    int64           `json:"price"`
	Category ToppingCategory `gorm:"type:varchar(20)" json:"category"`
}
