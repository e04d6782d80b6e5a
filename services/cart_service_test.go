package services

import (
	"testing"

	"pizzapalace/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddComputesTotals(t *testing.T) {
	db := setupDB(t)
	f := seedFixtures(t, db)
	u := seedUser(t, db, "shopper@example.com")
	svc := newCartService(db)

	// base 1000 * 1.5 + 150 + 100 = 1750 per unit, qty 2
	item, err := svc.Add(u.ID, &AddToCartIn{
		PizzaID:    f.Margherita.ID,
		SizeID:     f.Large.ID,
		ToppingIDs: []uint{f.Pepperoni.ID, f.Mushrooms.ID},
		Qty:        2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1750), item.UnitPrice)
	assert.Equal(t, int64(3500), item.Total)

	cart, subtotal, totalItems, err := svc.Get(u.ID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, int64(3500), subtotal)
	assert.Equal(t, 2, totalItems)

	// a second add stacks on top of the prior total
	_, err = svc.Add(u.ID, &AddToCartIn{PizzaID: f.Margherita.ID, SizeID: f.Small.ID, Qty: 1})
	require.NoError(t, err)

	_, subtotal, totalItems, err = svc.Get(u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4500), subtotal)
	assert.Equal(t, 3, totalItems)
}

func TestAddNeverMergesLines(t *testing.T) {
	db := setupDB(t)
	f := seedFixtures(t, db)
	u := seedUser(t, db, "shopper@example.com")
	svc := newCartService(db)

	in := &AddToCartIn{PizzaID: f.Margherita.ID, SizeID: f.Small.ID, Qty: 1}
	_, err := svc.Add(u.ID, in)
	require.NoError(t, err)
	_, err = svc.Add(u.ID, in)
	require.NoError(t, err)

	cart, _, totalItems, err := svc.Get(u.ID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2, "identical adds must stay separate lines")
	assert.Equal(t, 2, totalItems)
}

func TestAddCoercesQuantity(t *testing.T) {
	db := setupDB(t)
	f := seedFixtures(t, db)
	u := seedUser(t, db, "shopper@example.com")
	svc := newCartService(db)

	item, err := svc.Add(u.ID, &AddToCartIn{PizzaID: f.Margherita.ID, SizeID: f.Small.ID, Qty: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, item.Qty)
	assert.Equal(t, item.UnitPrice, item.Total)
}

func TestAddValidatesCatalog(t *testing.T) {
	db := setupDB(t)
	f := seedFixtures(t, db)
	u := seedUser(t, db, "shopper@example.com")
	svc := newCartService(db)

	_, err := svc.Add(u.ID, &AddToCartIn{PizzaID: 9999, SizeID: f.Small.ID, Qty: 1})
	assert.EqualError(t, err, "pizza not found")

	_, err = svc.Add(u.ID, &AddToCartIn{PizzaID: f.Unlisted.ID, SizeID: f.Small.ID, Qty: 1})
	assert.EqualError(t, err, "pizza is not available")

	_, err = svc.Add(u.ID, &AddToCartIn{PizzaID: f.Margherita.ID, SizeID: 9999, Qty: 1})
	assert.EqualError(t, err, "size not found")

	_, err = svc.Add(u.ID, &AddToCartIn{PizzaID: f.Margherita.ID, SizeID: f.Small.ID, ToppingIDs: []uint{9999}, Qty: 1})
	assert.EqualError(t, err, "invalid toppings")
}

func TestUpdateQtyRecomputesTotal(t *testing.T) {
	db := setupDB(t)
	f := seedFixtures(t, db)
	u := seedUser(t, db, "shopper@example.com")
	svc := newCartService(db)

	item, err := svc.Add(u.ID, &AddToCartIn{PizzaID: f.Margherita.ID, SizeID: f.Small.ID, Qty: 1})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateQty(u.ID, item.ID, 3))

	cart, subtotal, totalItems, err := svc.Get(u.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Qty)
	assert.Equal(t, cart.Items[0].UnitPrice*3, cart.Items[0].Total)
	assert.Equal(t, cart.Items[0].Total, subtotal)
	assert.Equal(t, 3, totalItems)
}

func TestUpdateQtyZeroRemovesItem(t *testing.T) {
	db := setupDB(t)
	f := seedFixtures(t, db)
	u := seedUser(t, db, "shopper@example.com")
	svc := newCartService(db)

	item, err := svc.Add(u.ID, &AddToCartIn{PizzaID: f.Margherita.ID, SizeID: f.Small.ID, Qty: 2})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateQty(u.ID, item.ID, 0))

	cart, subtotal, totalItems, err := svc.Get(u.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items, "qty 0 must remove the line, not keep a zero-quantity record")
	assert.Zero(t, subtotal)
	assert.Zero(t, totalItems)
}

func TestUpdateQtyUnknownIDIsNoop(t *testing.T) {
	db := setupDB(t)
	f := seedFixtures(t, db)
	u := seedUser(t, db, "shopper@example.com")
	svc := newCartService(db)

	_, err := svc.Add(u.ID, &AddToCartIn{PizzaID: f.Margherita.ID, SizeID: f.Small.ID, Qty: 1})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateQty(u.ID, 9999, 5))

	cart, _, totalItems, err := svc.Get(u.ID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 1, totalItems)
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	db := setupDB(t)
	f := seedFixtures(t, db)
	u := seedUser(t, db, "shopper@example.com")
	svc := newCartService(db)

	item, err := svc.Add(u.ID, &AddToCartIn{PizzaID: f.Margherita.ID, SizeID: f.Small.ID, Qty: 1})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(u.ID, item.ID))
	require.NoError(t, svc.RemoveItem(u.ID, item.ID), "second remove must not error")
	require.NoError(t, svc.RemoveItem(u.ID, 424242), "unknown id must not error")

	cart, _, _, err := svc.Get(u.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestRemoveItemScopedToOwner(t *testing.T) {
	db := setupDB(t)
	f := seedFixtures(t, db)
	alice := seedUser(t, db, "alice@example.com")
	mallory := seedUser(t, db, "mallory@example.com")
	svc := newCartService(db)

	item, err := svc.Add(alice.ID, &AddToCartIn{PizzaID: f.Margherita.ID, SizeID: f.Small.ID, Qty: 1})
	require.NoError(t, err)

	// someone else's item id does nothing
	require.NoError(t, svc.RemoveItem(mallory.ID, item.ID))

	cart, _, _, err := svc.Get(alice.ID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestClearCart(t *testing.T) {
	db := setupDB(t)
	f := seedFixtures(t, db)
	u := seedUser(t, db, "shopper@example.com")
	svc := newCartService(db)

	for i := 0; i < 3; i++ {
		_, err := svc.Add(u.ID, &AddToCartIn{PizzaID: f.Margherita.ID, SizeID: f.Small.ID, Qty: 1})
		require.NoError(t, err)
	}

	require.NoError(t, svc.Clear(u.ID))

	cart, subtotal, totalItems, err := svc.Get(u.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, subtotal)
	assert.Zero(t, totalItems)

	// clearing an already empty (or never created) cart is fine too
	require.NoError(t, svc.Clear(u.ID))
	require.NoError(t, svc.Clear(9999))
}

func TestCartRoundTrip(t *testing.T) {
	db := setupDB(t)
	f := seedFixtures(t, db)
	u := seedUser(t, db, "shopper@example.com")
	svc := newCartService(db)

	_, err := svc.Add(u.ID, &AddToCartIn{PizzaID: f.Margherita.ID, SizeID: f.Small.ID, Qty: 1, Note: "extra crispy"})
	require.NoError(t, err)
	_, err = svc.Add(u.ID, &AddToCartIn{PizzaID: f.Margherita.ID, SizeID: f.Large.ID, ToppingIDs: []uint{f.Pepperoni.ID}, Qty: 2})
	require.NoError(t, err)
	_, err = svc.Add(u.ID, &AddToCartIn{PizzaID: f.Margherita.ID, SizeID: f.Small.ID, ToppingIDs: []uint{f.Mushrooms.ID}, Qty: 3})
	require.NoError(t, err)

	before, beforeSubtotal, beforeItems, err := svc.Get(u.ID)
	require.NoError(t, err)

	// simulate a reload: fresh repositories and service over the same store
	reloaded := NewCartService(db, repository.NewCartRepository(db), repository.NewCatalogRepository(db))
	after, afterSubtotal, afterItems, err := reloaded.Get(u.ID)
	require.NoError(t, err)

	assert.Equal(t, beforeSubtotal, afterSubtotal)
	assert.Equal(t, beforeItems, afterItems)
	require.Len(t, after.Items, len(before.Items))
	for i := range before.Items {
		assert.Equal(t, before.Items[i].ID, after.Items[i].ID, "insertion order must be stable")
		assert.Equal(t, before.Items[i].Qty, after.Items[i].Qty)
		assert.Equal(t, before.Items[i].UnitPrice, after.Items[i].UnitPrice)
		assert.Equal(t, before.Items[i].Total, after.Items[i].Total)
		assert.Equal(t, before.Items[i].Note, after.Items[i].Note)
	}
}
