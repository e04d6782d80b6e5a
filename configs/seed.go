package configs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"

	"pizzapalace/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:embed catalog.json
var catalogJSON []byte

type catalogFile struct {
	Sizes []struct {
		Name       string  `json:"name"`
		DiameterCm int     `json:"diameterCm"`
		Multiplier float64 `json:"multiplier"`
	} `json:"sizes"`
	Toppings []struct {
		Name     string                 `json:"name"`
		Price    int64                  `json:"price"`
		Category entity.ToppingCategory `json:"category"`
	} `json:"toppings"`
	Pizzas []struct {
		Name            string               `json:"name"`
		Description     string               `json:"description"`
		BasePrice       int64                `json:"basePrice"`
		Category        entity.PizzaCategory `json:"category"`
		Available       bool                 `json:"available"`
		Ingredients     entity.StringList    `json:"ingredients"`
		CookingMinutes  int                  `json:"cookingMinutes"`
		Calories        int                  `json:"calories"`
		DefaultToppings []string             `json:"defaultToppings"`
	} `json:"pizzas"`
}

// SeedCatalog loads the static menu into the DB. Safe to run on every
// start: existing rows are matched by name and left alone.
func SeedCatalog(g *gorm.DB) error {
	var cat catalogFile
	if err := json.Unmarshal(catalogJSON, &cat); err != nil {
		return fmt.Errorf("parse catalog.json: %w", err)
	}

	for _, s := range cat.Sizes {
		size := entity.PizzaSize{Name: s.Name, DiameterCm: s.DiameterCm, Multiplier: s.Multiplier}
		if err := g.Where(entity.PizzaSize{Name: s.Name}).FirstOrCreate(&size).Error; err != nil {
			return err
		}
	}

	toppingByName := make(map[string]entity.Topping, len(cat.Toppings))
	for _, t := range cat.Toppings {
		topping := entity.Topping{Name: t.Name, Price: t.Price, Category: t.Category}
		if err := g.Where(entity.Topping{Name: t.Name}).FirstOrCreate(&topping).Error; err != nil {
			return err
		}
		toppingByName[topping.Name] = topping
	}

	for _, p := range cat.Pizzas {
		if !p.Category.Valid() {
			return fmt.Errorf("pizza %q: unknown category %q", p.Name, p.Category)
		}
		pizza := entity.Pizza{
			Name:           p.Name,
			Description:    p.Description,
			BasePrice:      p.BasePrice,
			Category:       p.Category,
			Available:      p.Available,
			Ingredients:    p.Ingredients,
			CookingMinutes: p.CookingMinutes,
			Calories:       p.Calories,
		}
		if err := g.Where(entity.Pizza{Name: p.Name}).FirstOrCreate(&pizza).Error; err != nil {
			return err
		}

		defaults := make([]entity.Topping, 0, len(p.DefaultToppings))
		for _, name := range p.DefaultToppings {
			t, ok := toppingByName[name]
			if !ok {
				return fmt.Errorf("pizza %q: unknown default topping %q", p.Name, name)
			}
			defaults = append(defaults, t)
		}
		if err := g.Model(&pizza).Association("DefaultToppings").Replace(defaults); err != nil {
			return err
		}
	}
	return nil
}

// SeedStaff creates the first staff account from env, once.
func SeedStaff(g *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		log.Println("skip seeding staff: missing STAFF_EMAIL/STAFF_PASSWORD")
		return nil
	}

	var count int64
	g.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("staff already exists:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	staff := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Staff",
		LastName:  "Seed",
		Role:      "staff",
	}
	return g.Create(&staff).Error
}
