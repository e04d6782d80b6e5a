package entity

import (
	"gorm.io/gorm"
)

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending:  {PaymentPaid, PaymentFailed},
	PaymentPaid:     {PaymentRefunded},
	PaymentFailed:   {},
	PaymentRefunded: {},
}

func (s PaymentStatus) Valid() bool {
	_, ok := paymentTransitions[s]
	return ok
}

func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, n := range paymentTransitions[s] {
		if n == next {
			return true
		}
	}
	return false
}

type Payment struct {
	gorm.Model
	Amount int64 `json:"amount"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	Method PaymentMethod `json:"method"`
	Status PaymentStatus `json:"status"`
}
