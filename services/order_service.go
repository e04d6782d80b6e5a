package services

import (
	"context"
	"errors"
	"log"

	"pizzapalace/entity"
	"pizzapalace/events"
	"pizzapalace/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusListener receives order updates for live feeds. Implementations
// must not block.
type StatusListener interface {
	OrderUpdated(o *entity.Order)
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository

	Publisher events.Publisher
	Listener  StatusListener // optional
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository, pub events.Publisher) *OrderService {
	if pub == nil {
		pub = events.NopPublisher{}
	}
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, Publisher: pub}
}

type CheckoutIn struct {
	Type          entity.OrderType     `json:"type" binding:"required,oneof=delivery pickup"`
	Address       string               `json:"address"`
	PaymentMethod entity.PaymentMethod `json:"paymentMethod" binding:"required,oneof=card cash"`
	TipCents      int64                `json:"tipCents" binding:"gte=0"`
	Note          string               `json:"note"`
}

// Checkout snapshots the current cart into a new pending order. The
// cart itself is left untouched; the caller clears it after a
// successful checkout if that's what it wants.
func (s *OrderService) Checkout(userID uint, in *CheckoutIn) (*entity.Order, error) {
	if in.Type == entity.OrderTypeDelivery && in.Address == "" {
		return nil, errors.New("address is required for delivery")
	}

	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	var subtotal int64
	for _, it := range cart.Items {
		subtotal += it.Total
	}
	tax := TaxFor(subtotal)
	fee := DeliveryFeeFor(in.Type, subtotal)
	total := subtotal + tax + fee + in.TipCents

	order := entity.Order{
		Number:      uuid.NewString(),
		UserID:      userID,
		Type:        in.Type,
		Status:      entity.StatusPending,
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: fee,
		Tip:         in.TipCents,
		Total:       total,
		Address:     in.Address,
		Note:        in.Note,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, it := range cart.Items {
			oi := entity.OrderItem{
				OrderID:   order.ID,
				PizzaID:   it.PizzaID,
				PizzaName: it.Pizza.Name,
				SizeName:  it.Size.Name,
				Qty:       it.Qty,
				UnitPrice: it.UnitPrice,
				Total:     it.Total,
				Note:      it.Note,
			}
			for _, sel := range it.Toppings {
				oi.Toppings = append(oi.Toppings, entity.OrderItemTopping{
					ToppingID: sel.ToppingID,
					Name:      sel.Topping.Name,
					Price:     sel.Price,
				})
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		p := entity.Payment{
			Amount:  total,
			OrderID: order.ID,
			Method:  in.PaymentMethod,
			Status:  entity.PaymentPending,
		}
		return s.Repo.CreatePayment(tx, &p)
	})
	if err != nil {
		return nil, err
	}

	created, err := s.Repo.GetByNumber(order.Number)
	if err != nil {
		return nil, err
	}

	if err := s.Publisher.PublishOrderCreated(context.Background(), created); err != nil {
		log.Printf("publish order created %s: %v", created.Number, err)
	}
	return created, nil
}

// GetByNumber enforces ownership: a customer only sees their own
// orders. Staff pass elevated=true from the role check in the
// controller.
func (s *OrderService) GetByNumber(number string, requesterID uint, elevated bool) (*entity.Order, error) {
	o, err := s.Repo.GetByNumber(number)
	if err != nil {
		return nil, err
	}
	if !elevated && o.UserID != requesterID {
		return nil, ErrForbidden
	}
	return o, nil
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListForUser(userID)
}

type StaffOrderListOut struct {
	Items []entity.Order `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

func (s *OrderService) ListForStaff(status entity.OrderStatus, page, limit int) (*StaffOrderListOut, error) {
	if status != "" && !status.Valid() {
		return nil, errors.New("unknown status")
	}
	items, total, err := s.Repo.ListByStatus(status, page, limit)
	if err != nil {
		return nil, err
	}
	return &StaffOrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}
