package entity

import (
	"gorm.io/gorm"
)

// PizzaSize scales a pizza's base price by Multiplier.
type PizzaSize struct {
	gorm.Model
	Name       string  `gorm:"uniqueIndex;not null" json:"name"`
	DiameterCm int     `json:"diameterCm"`
	Multiplier float64 `json:"multiplier"`
}
