package repository

import (
	"errors"

	"pizzapalace/entity"

	"gorm.io/gorm"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// GetCartWithItems returns the user's cart, items in insertion order.
// A user without a cart row gets an empty cart, never an error.
func (r *CartRepository) GetCartWithItems(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.id") }).
		Preload("Items.Pizza").
		Preload("Items.Size").
		Preload("Items.Toppings.Topping").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) GetOrCreateCart(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := tx.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// AddItem always appends a new line; lines are never merged.
func (r *CartRepository) AddItem(tx *gorm.DB, cartID uint, row *entity.CartItem) error {
	row.CartID = cartID
	return tx.Create(row).Error
}

// UpdateQty replaces the quantity and recomputes the line total in one
// statement, scoped to the owning user. qty <= 0 removes the line.
// Unknown item ids are a no-op.
func (r *CartRepository) UpdateQty(tx *gorm.DB, userID, itemID uint, qty int) error {
	if qty <= 0 {
		return r.RemoveItem(tx, userID, itemID)
	}
	return tx.Exec(`
		UPDATE cart_items
		   SET qty = ?, total = unit_price * ?
		 WHERE id = ?
		   AND deleted_at IS NULL
		   AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)
	`, qty, qty, itemID, userID).Error
}

// RemoveItem deletes the line and its topping rows. Absent ids are a
// no-op, so a second call with the same id succeeds too.
func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, itemID uint) error {
	if err := tx.Exec(`
		DELETE FROM cart_item_toppings
		 WHERE cart_item_id IN (
			SELECT ci.id FROM cart_items ci
			  JOIN carts c ON c.id = ci.cart_id
			 WHERE ci.id = ? AND c.user_id = ?
		 )
	`, itemID, userID).Error; err != nil {
		return err
	}
	return tx.
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", itemID, userID).
		Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) error {
	var c entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := tx.Exec(`
		DELETE FROM cart_item_toppings
		 WHERE cart_item_id IN (SELECT id FROM cart_items WHERE cart_id = ?)
	`, c.ID).Error; err != nil {
		return err
	}
	return tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error
}
