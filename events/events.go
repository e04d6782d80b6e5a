package events

import (
	"context"
	"time"

	"pizzapalace/entity"
)

// Publisher is the injected order-backend boundary. Implementations
// report success or failure; callers decide whether that is fatal
// (for this service it never is — failures are logged and the order
// stands).
type Publisher interface {
	PublishOrderCreated(ctx context.Context, o *entity.Order) error
	PublishOrderStatusChanged(ctx context.Context, o *entity.Order) error
	Close() error
}

type OrderLine struct {
	PizzaID   uint   `json:"pizzaId"`
	PizzaName string `json:"pizzaName"`
	SizeName  string `json:"sizeName"`
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"`
	Total     int64  `json:"total"`
}

type OrderCreated struct {
	EventType string      `json:"eventType"`
	Number    string      `json:"number"`
	UserID    uint        `json:"userId"`
	Type      string      `json:"type"`
	Subtotal  int64       `json:"subtotal"`
	Total     int64       `json:"total"`
	Items     []OrderLine `json:"items"`
	Timestamp time.Time   `json:"timestamp"`
}

type OrderStatusChanged struct {
	EventType string    `json:"eventType"`
	Number    string    `json:"number"`
	UserID    uint      `json:"userId"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrderCreated(context.Context, *entity.Order) error       { return nil }
func (NopPublisher) PublishOrderStatusChanged(context.Context, *entity.Order) error { return nil }
func (NopPublisher) Close() error                                                   { return nil }
