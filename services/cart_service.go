package services

import (
	"errors"

	"pizzapalace/entity"
	"pizzapalace/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	CatalogRepo *repository.CatalogRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, catalog *repository.CatalogRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, CatalogRepo: catalog}
}

type AddToCartIn struct {
	PizzaID    uint   `json:"pizzaId" binding:"required"`
	SizeID     uint   `json:"sizeId" binding:"required"`
	ToppingIDs []uint `json:"toppingIds"`
	Qty        int    `json:"qty"`
	Note       string `json:"note"`
}

// Get returns the cart plus its two derived totals. Both are pure
// functions of the stored lines.
func (s *CartService) Get(userID uint) (*entity.Cart, int64, int, error) {
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, 0, 0, err
	}
	var subtotal int64
	var count int
	for _, it := range c.Items {
		subtotal += it.Total
		count += it.Qty
	}
	return c, subtotal, count, nil
}

// Add appends a new line. Adds never merge with existing lines, even
// for an identical pizza/size/topping combination.
func (s *CartService) Add(userID uint, in *AddToCartIn) (*entity.CartItem, error) {
	if in.Qty < 1 {
		in.Qty = 1
	}

	p, err := s.CatalogRepo.GetPizza(in.PizzaID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errors.New("pizza not found")
		}
		return nil, err
	}
	if !p.Available {
		return nil, errors.New("pizza is not available")
	}

	size, err := s.CatalogRepo.GetSize(in.SizeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errors.New("size not found")
		}
		return nil, err
	}

	toppings, err := s.CatalogRepo.GetToppingsByIDs(in.ToppingIDs)
	if err != nil {
		return nil, err
	}
	if len(toppings) != len(in.ToppingIDs) {
		return nil, errors.New("invalid toppings")
	}

	unit := UnitPrice(p.BasePrice, size.Multiplier, toppings)
	rows := make([]entity.CartItemTopping, 0, len(toppings))
	for _, t := range toppings {
		rows = append(rows, entity.CartItemTopping{ToppingID: t.ID, Price: t.Price})
	}

	line := &entity.CartItem{
		PizzaID:   p.ID,
		SizeID:    size.ID,
		Qty:       in.Qty,
		UnitPrice: unit,
		Total:     unit * int64(in.Qty),
		Note:      in.Note,
		Toppings:  rows,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		c, err := s.CartRepo.GetOrCreateCart(tx, userID)
		if err != nil {
			return err
		}
		return s.CartRepo.AddItem(tx, c.ID, line)
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}

// UpdateQty with qty <= 0 removes the line; unknown ids are a no-op.
func (s *CartService) UpdateQty(userID, itemID uint, qty int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQty(tx, userID, itemID, qty)
	})
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, itemID)
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}
