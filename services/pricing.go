package services

import (
	"math"

	"pizzapalace/entity"
)

// Product pricing policy. These are business constants, not derived.
const (
	TaxRatePercent        = 8
	DeliveryFeeCents      = 399
	FreeDeliveryOverCents = 2500
)

// UnitPrice = round(basePrice * sizeMultiplier) + sum of topping prices.
func UnitPrice(basePrice int64, multiplier float64, toppings []entity.Topping) int64 {
	price := int64(math.Round(float64(basePrice) * multiplier))
	for _, t := range toppings {
		price += t.Price
	}
	return price
}

func TaxFor(subtotal int64) int64 {
	return subtotal * TaxRatePercent / 100
}

// Pickup orders and large delivery orders ship free.
func DeliveryFeeFor(orderType entity.OrderType, subtotal int64) int64 {
	if orderType != entity.OrderTypeDelivery {
		return 0
	}
	if subtotal > FreeDeliveryOverCents {
		return 0
	}
	return DeliveryFeeCents
}
