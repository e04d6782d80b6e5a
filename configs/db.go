package configs

import (
	"pizzapalace/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	if err := Migrate(db); err != nil {
		panic(err)
	}
}

// Migrate runs the schema against an arbitrary DB; used by tests.
func Migrate(g *gorm.DB) error {
	return g.AutoMigrate(
		&entity.User{},
		&entity.Pizza{}, &entity.PizzaSize{}, &entity.Topping{},
		&entity.Cart{}, &entity.CartItem{}, &entity.CartItemTopping{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderItemTopping{},
		&entity.Payment{},
	)
}
