package services

import (
	"fmt"
	"strings"
	"testing"

	"pizzapalace/configs"
	"pizzapalace/entity"
	"pizzapalace/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupDB opens a throwaway in-memory database named after the test so
// parallel tests never share state.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))
	return db
}

type fixtures struct {
	Margherita entity.Pizza // base 1000
	Unlisted   entity.Pizza // available=false
	Small      entity.PizzaSize
	Large      entity.PizzaSize
	Pepperoni  entity.Topping // 150
	Mushrooms  entity.Topping // 100
}

func seedFixtures(t *testing.T, db *gorm.DB) fixtures {
	t.Helper()
	f := fixtures{
		Margherita: entity.Pizza{Name: "Margherita", BasePrice: 1000, Category: entity.CategoryClassic, Available: true, Ingredients: entity.StringList{"tomato", "mozzarella"}},
		Unlisted:   entity.Pizza{Name: "Quattro Formaggi", BasePrice: 1349, Category: entity.CategorySpecialty, Available: false},
		Small:      entity.PizzaSize{Name: "Small", DiameterCm: 25, Multiplier: 1.0},
		Large:      entity.PizzaSize{Name: "Large", DiameterCm: 35, Multiplier: 1.5},
		Pepperoni:  entity.Topping{Name: "Pepperoni", Price: 150, Category: entity.ToppingMeat},
		Mushrooms:  entity.Topping{Name: "Mushrooms", Price: 100, Category: entity.ToppingVegetable},
	}
	require.NoError(t, db.Create(&f.Margherita).Error)
	require.NoError(t, db.Create(&f.Unlisted).Error)
	require.NoError(t, db.Create(&f.Small).Error)
	require.NoError(t, db.Create(&f.Large).Error)
	require.NoError(t, db.Create(&f.Pepperoni).Error)
	require.NoError(t, db.Create(&f.Mushrooms).Error)
	return f
}

func seedUser(t *testing.T, db *gorm.DB, email string) entity.User {
	t.Helper()
	u := entity.User{Email: email, Password: "x", Role: "customer"}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewCatalogRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db, repository.NewOrderRepository(db), repository.NewCartRepository(db), nil)
}
