package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`

	// Delivery address
	Street string `json:"street"`
	City   string `json:"city"`
	Zip    string `json:"zip"`

	Role string `gorm:"not null;default:customer" json:"role"`

	// Preferences; the lists tolerate malformed stored JSON (decode to empty)
	FavoriteSizeID   *uint      `json:"favoriteSizeId"`
	FavoriteToppings UintList   `gorm:"type:text" json:"favoriteToppings"`
	Allergies        StringList `gorm:"type:text" json:"allergies"`

	Orders []Order `json:"-"`
	Cart   *Cart   `json:"-"`
}
