package entity

import (
	"gorm.io/gorm"
)

// Cart is the shopper's in-progress selection, one row per user.
type Cart struct {
	gorm.Model
	UserID uint `json:"userId" gorm:"uniqueIndex"`
	User   User `json:"-"`

	// Items keep insertion order (ascending item ID) for stable display.
	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
