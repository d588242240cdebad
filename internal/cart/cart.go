// Package cart implements the guest shopping cart. A cart is a map of
// product ID to quantity, persisted in the visitor's session.
package cart

import (
	"errors"
	"fmt"
	"sort"
)

// MaxQuantity caps a single line so a typo cannot order 10000 croissants.
const MaxQuantity = 50

// ErrQuantityTooLarge is returned by SetItem for quantities above
// MaxQuantity.
var ErrQuantityTooLarge = errors.New("cart: quantity exceeds maximum")

// Cart holds the selected quantities keyed by product ID.
// Entries never have quantity <= 0; setting zero removes the entry.
type Cart struct {
	items map[uint]int
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{items: map[uint]int{}}
}

// FromItems builds a cart from an existing quantity map, dropping
// non-positive entries.
func FromItems(items map[uint]int) *Cart {
	c := New()
	for id, qty := range items {
		if qty > 0 {
			c.items[id] = qty
		}
	}
	return c
}

// SetItem sets the quantity for a product. Zero or negative quantity
// removes the entry.
func (c *Cart) SetItem(productID uint, qty int) error {
	if qty <= 0 {
		delete(c.items, productID)
		return nil
	}
	if qty > MaxQuantity {
		return fmt.Errorf("%w: %d > %d", ErrQuantityTooLarge, qty, MaxQuantity)
	}
	c.items[productID] = qty
	return nil
}

// Add increments the quantity for a product by delta (may be negative).
// The resulting quantity follows SetItem semantics.
func (c *Cart) Add(productID uint, delta int) error {
	return c.SetItem(productID, c.items[productID]+delta)
}

// Remove deletes a product from the cart.
func (c *Cart) Remove(productID uint) {
	delete(c.items, productID)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = map[uint]int{}
}

// Quantity returns the quantity for a product, zero if absent.
func (c *Cart) Quantity(productID uint) int {
	return c.items[productID]
}

// Len returns the number of distinct products in the cart.
func (c *Cart) Len() int {
	return len(c.items)
}

// ItemCount returns the total number of units across all entries.
func (c *Cart) ItemCount() int {
	var n int
	for _, qty := range c.items {
		n += qty
	}
	return n
}

// IsEmpty reports whether the cart has no items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items returns a copy of the quantity map.
func (c *Cart) Items() map[uint]int {
	out := make(map[uint]int, len(c.items))
	for id, qty := range c.items {
		out[id] = qty
	}
	return out
}

// Line is one cart entry in a stable order.
type Line struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

// Lines returns the cart entries sorted by product ID, for deterministic
// API responses and order item creation.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.items))
	for id, qty := range c.items {
		out = append(out, Line{ProductID: id, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}
