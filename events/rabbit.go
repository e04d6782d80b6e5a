package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pizzapalace/entity"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	OrderCreatedQueue       = "order.created"
	OrderStatusChangedQueue = "order.status_changed"

	publishTimeout = 3 * time.Second
)

// RabbitPublisher publishes order events to durable queues on the
// default exchange.
type RabbitPublisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewRabbitPublisher(url string) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	// Declare queues up front so publish never fails on missing infra.
	for _, q := range []string{OrderCreatedQueue, OrderStatusChangedQueue} {
		if _, err := ch.QueueDeclare(q, true, false, false, false, nil); err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("declare %s: %w", q, err)
		}
	}

	return &RabbitPublisher{conn: conn, ch: ch}, nil
}

func (p *RabbitPublisher) Close() error {
	if err := p.ch.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}

func (p *RabbitPublisher) PublishOrderCreated(ctx context.Context, o *entity.Order) error {
	ev := OrderCreated{
		EventType: "OrderCreated",
		Number:    o.Number,
		UserID:    o.UserID,
		Type:      string(o.Type),
		Subtotal:  o.Subtotal,
		Total:     o.Total,
		Timestamp: time.Now().UTC(),
	}
	for _, it := range o.Items {
		ev.Items = append(ev.Items, OrderLine{
			PizzaID:   it.PizzaID,
			PizzaName: it.PizzaName,
			SizeName:  it.SizeName,
			Qty:       it.Qty,
			UnitPrice: it.UnitPrice,
			Total:     it.Total,
		})
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal OrderCreated: %w", err)
	}
	return p.publishJSON(ctx, OrderCreatedQueue, body)
}

func (p *RabbitPublisher) PublishOrderStatusChanged(ctx context.Context, o *entity.Order) error {
	ev := OrderStatusChanged{
		EventType: "OrderStatusChanged",
		Number:    o.Number,
		UserID:    o.UserID,
		Status:    string(o.Status),
		Timestamp: time.Now().UTC(),
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal OrderStatusChanged: %w", err)
	}
	return p.publishJSON(ctx, OrderStatusChangedQueue, body)
}

func (p *RabbitPublisher) publishJSON(ctx context.Context, routingKey string, body []byte) error {
	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return p.ch.PublishWithContext(
		pubCtx,
		"",         // default exchange
		routingKey, // queue name as routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}
