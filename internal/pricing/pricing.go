// Package pricing turns a cart into a priced quote: resolved lines,
// subtotal, delivery fee, and total.
package pricing

import (
	"github.com/pamleeskitchen/bakehouse/internal/cart"
	"github.com/pamleeskitchen/bakehouse/internal/money"
)

// DeliveryType selects how an order reaches the customer.
type DeliveryType string

const (
	Delivery DeliveryType = "delivery"
	Pickup   DeliveryType = "pickup"
)

// Valid reports whether t is a known delivery type.
func (t DeliveryType) Valid() bool {
	return t == Delivery || t == Pickup
}

// PricedProduct is the subset of a catalog product that pricing needs.
type PricedProduct struct {
	ID    uint
	Name  string
	Price money.Amount
}

// Line is one priced cart entry.
type Line struct {
	ProductID   uint         `json:"productId"`
	ProductName string       `json:"productName"`
	UnitPrice   money.Amount `json:"unitPrice"`
	Quantity    int          `json:"quantity"`
	LineTotal   money.Amount `json:"lineTotal"`
}

// Quote is a fully priced cart.
type Quote struct {
	Lines       []Line       `json:"lines"`
	Subtotal    money.Amount `json:"subtotal"`
	DeliveryFee money.Amount `json:"deliveryFee"`
	Total       money.Amount `json:"total"`
}

// Price resolves the cart against the product set and computes totals.
// Cart entries whose product is absent from products are silently dropped;
// a stale cart must not block checkout of valid items.
//
// deliveryFee applies only for Delivery; Pickup always ships free.
func Price(c *cart.Cart, products []PricedProduct, deliveryType DeliveryType, deliveryFee money.Amount) Quote {
	byID := make(map[uint]PricedProduct, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	q := Quote{Lines: []Line{}}
	for _, entry := range c.Lines() {
		p, ok := byID[entry.ProductID]
		if !ok {
			continue
		}
		lineTotal := p.Price.MulInt(entry.Quantity)
		q.Lines = append(q.Lines, Line{
			ProductID:   p.ID,
			ProductName: p.Name,
			UnitPrice:   p.Price,
			Quantity:    entry.Quantity,
			LineTotal:   lineTotal,
		})
		q.Subtotal = q.Subtotal.Add(lineTotal)
	}

	if deliveryType == Delivery && len(q.Lines) > 0 {
		q.DeliveryFee = deliveryFee
	}
	q.Total = q.Subtotal.Add(q.DeliveryFee)
	return q
}
