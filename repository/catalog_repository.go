package repository

import (
	"errors"

	"pizzapalace/entity"

	"gorm.io/gorm"
)

// CatalogRepository is read-only: the catalog is seeded at startup and
// never written through the API.
type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

func (r *CatalogRepository) ListPizzas(category entity.PizzaCategory, availableOnly bool) ([]entity.Pizza, error) {
	q := r.DB.Preload("DefaultToppings").Order("id")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if availableOnly {
		q = q.Where("available = ?", true)
	}
	var pizzas []entity.Pizza
	if err := q.Find(&pizzas).Error; err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (r *CatalogRepository) GetPizza(id uint) (*entity.Pizza, error) {
	var p entity.Pizza
	err := r.DB.Preload("DefaultToppings").First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CatalogRepository) ListSizes() ([]entity.PizzaSize, error) {
	var sizes []entity.PizzaSize
	if err := r.DB.Order("diameter_cm").Find(&sizes).Error; err != nil {
		return nil, err
	}
	return sizes, nil
}

func (r *CatalogRepository) GetSize(id uint) (*entity.PizzaSize, error) {
	var s entity.PizzaSize
	err := r.DB.First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *CatalogRepository) ListToppings() ([]entity.Topping, error) {
	var toppings []entity.Topping
	if err := r.DB.Order("category, name").Find(&toppings).Error; err != nil {
		return nil, err
	}
	return toppings, nil
}

// GetToppingsByIDs returns the matched rows; the caller compares lengths
// to detect unknown ids.
func (r *CatalogRepository) GetToppingsByIDs(ids []uint) ([]entity.Topping, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var toppings []entity.Topping
	if err := r.DB.Where("id IN ?", ids).Find(&toppings).Error; err != nil {
		return nil, err
	}
	return toppings, nil
}
