package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pamleeskitchen/bakehouse/internal/cart"
	"github.com/pamleeskitchen/bakehouse/internal/money"
)

var catalog = []PricedProduct{
	{ID: 1, Name: "Chocolate Layer Cake", Price: money.MustFromString("450.00")},
	{ID: 2, Name: "Fresh Croissants", Price: money.MustFromString("25.00")},
	{ID: 3, Name: "Artisan Sourdough", Price: money.MustFromString("55.00")},
}

var standardFee = money.MustFromString("50.00")

func TestPriceDelivery(t *testing.T) {
	c := cart.FromItems(map[uint]int{1: 2, 2: 1})

	q := Price(c, catalog, Delivery, standardFee)

	require.Len(t, q.Lines, 2)
	assert.Equal(t, "900.00", q.Lines[0].LineTotal.String())
	assert.Equal(t, "25.00", q.Lines[1].LineTotal.String())
	assert.Equal(t, "925.00", q.Subtotal.String())
	assert.Equal(t, "50.00", q.DeliveryFee.String())
	assert.Equal(t, "975.00", q.Total.String())
}

func TestPricePickupHasNoFee(t *testing.T) {
	c := cart.FromItems(map[uint]int{1: 2, 2: 1})

	q := Price(c, catalog, Pickup, standardFee)

	assert.Equal(t, "925.00", q.Subtotal.String())
	assert.Equal(t, "0.00", q.DeliveryFee.String())
	assert.Equal(t, "925.00", q.Total.String())
}

func TestPriceDropsUnknownProducts(t *testing.T) {
	// Product 99 was removed from the catalog after it was carted.
	c := cart.FromItems(map[uint]int{2: 1, 99: 3})

	q := Price(c, catalog, Delivery, standardFee)

	require.Len(t, q.Lines, 1)
	assert.Equal(t, uint(2), q.Lines[0].ProductID)
	assert.Equal(t, "25.00", q.Subtotal.String())
	assert.Equal(t, "75.00", q.Total.String())
}

func TestPriceEmptyCart(t *testing.T) {
	q := Price(cart.New(), catalog, Delivery, standardFee)

	assert.Empty(t, q.Lines)
	assert.True(t, q.Subtotal.IsZero())
	// No fee on an empty cart even for delivery.
	assert.True(t, q.DeliveryFee.IsZero())
	assert.True(t, q.Total.IsZero())
}

func TestDeliveryTypeValid(t *testing.T) {
	assert.True(t, Delivery.Valid())
	assert.True(t, Pickup.Valid())
	assert.False(t, DeliveryType("courier").Valid())
	assert.False(t, DeliveryType("").Valid())
}

func TestPriceLinesAreSortedByProductID(t *testing.T) {
	c := cart.FromItems(map[uint]int{3: 1, 1: 1, 2: 1})

	q := Price(c, catalog, Pickup, standardFee)

	require.Len(t, q.Lines, 3)
	assert.Equal(t, uint(1), q.Lines[0].ProductID)
	assert.Equal(t, uint(2), q.Lines[1].ProductID)
	assert.Equal(t, uint(3), q.Lines[2].ProductID)
}
