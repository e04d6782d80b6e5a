package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"pizzapalace/entity"

	"gorm.io/gorm"
)

// UpdateStatus moves an order forward along the lifecycle. Unknown
// numbers are an error, not a silent no-op; illegal transitions are
// rejected before touching the row.
func (s *OrderService) UpdateStatus(number string, next entity.OrderStatus) (*entity.Order, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("unknown status %q", next)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetByNumber(number)
		if err != nil {
			return err
		}
		if !o.Status.CanTransitionTo(next) {
			return fmt.Errorf("cannot move order from %s to %s", o.Status, next)
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, next)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.Repo.GetByNumber(number)
	if err != nil {
		return nil, err
	}

	if err := s.Publisher.PublishOrderStatusChanged(context.Background(), updated); err != nil {
		log.Printf("publish status change %s: %v", updated.Number, err)
	}
	if s.Listener != nil {
		s.Listener.OrderUpdated(updated)
	}
	return updated, nil
}

// UpdatePaymentStatus applies the same guard over the payment record.
func (s *OrderService) UpdatePaymentStatus(number string, next entity.PaymentStatus) (*entity.Order, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("unknown payment status %q", next)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetByNumber(number)
		if err != nil {
			return err
		}
		if o.Payment == nil {
			return errors.New("order has no payment record")
		}
		if !o.Payment.Status.CanTransitionTo(next) {
			return fmt.Errorf("cannot move payment from %s to %s", o.Payment.Status, next)
		}

		affected, err := s.Repo.UpdatePaymentStatusGuard(tx, o.ID, o.Payment.Status, next)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByNumber(number)
}
