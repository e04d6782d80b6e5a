package services

import (
	"context"
	"testing"

	"pizzapalace/entity"
	"pizzapalace/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedEvents struct {
	created []string
	changed []string
}

func (c *capturedEvents) PublishOrderCreated(_ context.Context, o *entity.Order) error {
	c.created = append(c.created, o.Number)
	return nil
}

func (c *capturedEvents) PublishOrderStatusChanged(_ context.Context, o *entity.Order) error {
	c.changed = append(c.changed, o.Number+":"+string(o.Status))
	return nil
}

func (c *capturedEvents) Close() error { return nil }

func fillCart(t *testing.T, svc *CartService, userID uint, lines ...AddToCartIn) {
	t.Helper()
	for i := range lines {
		_, err := svc.Add(userID, &lines[i])
		require.NoError(t, err)
	}
}

func TestCheckoutDeliveryPricing(t *testing.T) {
	db := setupDB(t)
	f := seedFixtures(t, db)
	u := seedUser(t, db, "shopper@example.com")
	cartSvc := newCartService(db)
	orderSvc := newOrderService(db)

	// 3 x (1000 * 1.0) = 3000 subtotal
	fillCart(t, cartSvc, u.ID, AddToCartIn{PizzaID: f.Margherita.ID, SizeID: f.Small.ID, Qty: 3})

	o, err := orderSvc.Checkout(u.ID, &CheckoutIn{
		Type:          entity.OrderTypeDelivery,
		Address:       "1 Pizza Lane",
		PaymentMethod: entity.PaymentCard,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3000), o.Subtotal)
	assert.Equal(t, int64(240), o.Tax)
	assert.Equal(t, int64(0), o.DeliveryFee, "subtotal over 2500 ships free")
	assert.Equal(t, int64(0), o.Tip)
	assert.Equal(t, int64(3240), o.Total)
	assert.Equal(t, entity.StatusPending, o.Status)
	assert.NotEmpty(t, o.Number)

	require.NotNil(t, o.Payment)
	assert.Equal(t, entity.PaymentPending, o.Payment.Status)
	assert.Equal(t, o.Total, o.Payment.Amount)
}

func TestCheckoutSmallOrderWithTip(t *testing.T) {
	db := setupDB(t)
	f := seedFixtures(t, db)
	u := seedUser(t, db, "shopper@example.com")
	cartSvc := newCartService(db)
	orderSvc := newOrderService(db)

	// 1000 subtotal -> 80 tax, 399 fee, 200 tip = 1679
	fillCart(t, cartSvc, u.ID, AddToCartIn{PizzaID: f.Margherita.ID, SizeID: f.Small.ID, Qty: 1})

	o, err := orderSvc.Checkout(u.ID, &CheckoutIn{
		Type:          entity.OrderTypeDelivery,
		Address:       "1 Pizza Lane",
		PaymentMethod: entity.PaymentCash,
		TipCents:      200,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1000), o.Subtotal)
	assert.Equal(t, int64(80), o.Tax)
	assert.Equal(t, int64(399), o.DeliveryFee)
	assert.Equal(t, int64(200), o.Tip)
	assert.Equal(t, int64(1679), o.Total)
}

func TestCheckoutSnapshotsItems(t *testing.T) {
	db := setupDB(t)
	f := seedFixtures(t, db)
	u := seedUser(t, db, "shopper@example.com")
	cartSvc := newCartService(db)
	orderSvc := newOrderService(db)

	fillCart(t, cartSvc, u.ID, AddToCartIn{
		PizzaID:    f.Margherita.ID,
		SizeID:     f.Large.ID,
		ToppingIDs: []uint{f.Pepperoni.ID},
		Qty:        2,
		Note:       "cut in squares",
	})

	o, err := orderSvc.Checkout(u.ID, &CheckoutIn{Type: entity.OrderTypePickup, PaymentMethod: entity.PaymentCard})
	require.NoError(t, err)

	require.Len(t, o.Items, 1)
	it := o.Items[0]
	assert.Equal(t, "Margherita", it.PizzaName)
	assert.Equal(t, "Large", it.SizeName)
	assert.Equal(t, 2, it.Qty)
	assert.Equal(t, "cut in squares", it.Note)
	require.Len(t, it.Toppings, 1)
	assert.Equal(t, "Pepperoni", it.Toppings[0].Name)
	assert.Equal(t, int64(150), it.Toppings[0].Price)
}

func TestCheckoutLeavesCartIntact(t *testing.T) {
	db := setupDB(t)
	f := seedFixtures(t, db)
	u := seedUser(t, db, "shopper@example.com")
	cartSvc := newCartService(db)
	orderSvc := newOrderService(db)

	for i := 0; i < 3; i++ {
		fillCart(t, cartSvc, u.ID, AddToCartIn{PizzaID: f.Margherita.ID, SizeID: f.Small.ID, Qty: 1})
	}

	_, err := orderSvc.Checkout(u.ID, &CheckoutIn{Type: entity.OrderTypePickup, PaymentMethod: entity.PaymentCard})
	require.NoError(t, err)

	cart, _, _, err := cartSvc.Get(u.ID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 3, "checkout must not mutate the cart; clearing is the caller's call")
}

func TestCheckoutValidation(t *testing.T) {
	db := setupDB(t)
	f := seedFixtures(t, db)
	u := seedUser(t, db, "shopper@example.com")
	cartSvc := newCartService(db)
	orderSvc := newOrderService(db)

	_, err := orderSvc.Checkout(u.ID, &CheckoutIn{Type: entity.OrderTypePickup, PaymentMethod: entity.PaymentCard})
	assert.ErrorIs(t, err, ErrEmptyCart)

	fillCart(t, cartSvc, u.ID, AddToCartIn{PizzaID: f.Margherita.ID, SizeID: f.Small.ID, Qty: 1})

	_, err = orderSvc.Checkout(u.ID, &CheckoutIn{Type: entity.OrderTypeDelivery, PaymentMethod: entity.PaymentCard})
	assert.EqualError(t, err, "address is required for delivery")
}

func TestGetByNumberOwnership(t *testing.T) {
	db := setupDB(t)
	f := seedFixtures(t, db)
	alice := seedUser(t, db, "alice@example.com")
	mallory := seedUser(t, db, "mallory@example.com")
	cartSvc := newCartService(db)
	orderSvc := newOrderService(db)

	fillCart(t, cartSvc, alice.ID, AddToCartIn{PizzaID: f.Margherita.ID, SizeID: f.Small.ID, Qty: 1})
	o, err := orderSvc.Checkout(alice.ID, &CheckoutIn{Type: entity.OrderTypePickup, PaymentMethod: entity.PaymentCard})
	require.NoError(t, err)

	got, err := orderSvc.GetByNumber(o.Number, alice.ID, false)
	require.NoError(t, err)
	assert.Equal(t, o.Number, got.Number)

	// wrong customer: access error, not a lookup miss
	_, err = orderSvc.GetByNumber(o.Number, mallory.ID, false)
	assert.ErrorIs(t, err, ErrForbidden)

	// staff sees everything
	_, err = orderSvc.GetByNumber(o.Number, mallory.ID, true)
	assert.NoError(t, err)

	// unknown number: lookup miss, not an access error
	_, err = orderSvc.GetByNumber("no-such-order", alice.ID, false)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListForUserMostRecentFirst(t *testing.T) {
	db := setupDB(t)
	f := seedFixtures(t, db)
	u := seedUser(t, db, "shopper@example.com")
	cartSvc := newCartService(db)
	orderSvc := newOrderService(db)

	var numbers []string
	for i := 0; i < 3; i++ {
		fillCart(t, cartSvc, u.ID, AddToCartIn{PizzaID: f.Margherita.ID, SizeID: f.Small.ID, Qty: 1})
		o, err := orderSvc.Checkout(u.ID, &CheckoutIn{Type: entity.OrderTypePickup, PaymentMethod: entity.PaymentCard})
		require.NoError(t, err)
		require.NoError(t, cartSvc.Clear(u.ID))
		numbers = append(numbers, o.Number)
	}

	orders, err := orderSvc.ListForUser(u.ID)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, numbers[2], orders[0].Number)
	assert.Equal(t, numbers[1], orders[1].Number)
	assert.Equal(t, numbers[0], orders[2].Number)

	// another customer's history stays empty
	other, err := orderSvc.ListForUser(9999)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestCheckoutPublishesEvent(t *testing.T) {
	db := setupDB(t)
	f := seedFixtures(t, db)
	u := seedUser(t, db, "shopper@example.com")
	cartSvc := newCartService(db)

	captured := &capturedEvents{}
	orderSvc := NewOrderService(db, repository.NewOrderRepository(db), repository.NewCartRepository(db), captured)

	fillCart(t, cartSvc, u.ID, AddToCartIn{PizzaID: f.Margherita.ID, SizeID: f.Small.ID, Qty: 1})
	o, err := orderSvc.Checkout(u.ID, &CheckoutIn{Type: entity.OrderTypePickup, PaymentMethod: entity.PaymentCard})
	require.NoError(t, err)

	require.Len(t, captured.created, 1)
	assert.Equal(t, o.Number, captured.created[0])
}
