package repository

import (
	"errors"

	"pizzapalace/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) CreatePayment(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

func (r *OrderRepository) GetByNumber(number string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("number = ?", number).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id") }).
		Preload("Items.Toppings").
		Preload("Payment").
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListForUser returns the customer's orders most-recent-first.
func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Payment").
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByStatus pages through all orders for the staff board.
func (r *OrderRepository) ListByStatus(status entity.OrderStatus, page, limit int) ([]entity.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	q := r.DB.Model(&entity.Order{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []entity.Order
	err := q.Preload("Items").Preload("Payment").
		Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// UpdateStatusGuard flips status only when the row is still in `from`.
// Zero rows affected means either an unknown id or a lost race.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// UpdatePaymentStatusGuard is the same guard over the payments table.
func (r *OrderRepository) UpdatePaymentStatusGuard(tx *gorm.DB, orderID uint, from, to entity.PaymentStatus) (int64, error) {
	res := tx.Model(&entity.Payment{}).
		Where("order_id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
