package entity

import (
	"gorm.io/gorm"
)

type PizzaCategory string

const (
	CategoryClassic    PizzaCategory = "classic"
	CategorySpecialty  PizzaCategory = "specialty"
	CategoryVegetarian PizzaCategory = "vegetarian"
	CategoryVegan      PizzaCategory = "vegan"
	CategoryPremium    PizzaCategory = "premium"
)

func (c PizzaCategory) Valid() bool {
	switch c {
	case CategoryClassic, CategorySpecialty, CategoryVegetarian, CategoryVegan, CategoryPremium:
		return true
	}
	return false
}

// Pizza is a menu entry. BasePrice is in cents at the smallest size;
// the size multiplier scales it.
type Pizza struct {
	gorm.Model
	Name        string        `gorm:"uniqueIndex;not null" json:"name"`
	Description string        `json:"description"`
	BasePrice   int64         `json:"basePrice"`
	Category    PizzaCategory `gorm:"type:varchar(20)" json:"category"`
	Available   bool          `json:"available"`

	Ingredients    StringList `gorm:"type:text" json:"ingredients"`
	CookingMinutes int        `json:"cookingMinutes"`
	Calories       int        `json:"calories"`

	DefaultToppings []Topping `gorm:"many2many:pizza_default_toppings;" json:"defaultToppings"`
}
