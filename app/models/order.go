package models

import (
	"gorm.io/gorm"

	"github.com/pamleeskitchen/bakehouse/internal/money"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// transitions maps each status to the states an admin may move it to.
// Cancellation is only reachable from pending; completed and cancelled
// are terminal.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusPreparing},
	StatusPreparing: {StatusReady},
	StatusReady:     {StatusCompleted},
	StatusCompleted: {},
	StatusCancelled: {},
}

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether an order in status s may move to next.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transitions are possible.
func (s OrderStatus) Terminal() bool {
	return len(transitions[s]) == 0
}

// Order is a placed order. Item prices and names are snapshotted at
// placement time so later catalog edits never change historical orders.
type Order struct {
	gorm.Model
	OrderNumber   string       `gorm:"size:64;uniqueIndex;not null" json:"orderNumber"`
	CustomerName  string       `gorm:"size:255;not null" json:"customerName"`
	CustomerEmail string       `gorm:"size:255;not null;index" json:"customerEmail"`
	CustomerPhone string       `gorm:"size:50" json:"customerPhone"`
	DeliveryType  string       `gorm:"size:20;not null" json:"deliveryType"` // "delivery" | "pickup"
	PaymentMethod string       `gorm:"size:20;not null;default:cash" json:"paymentMethod"`
	Address       string       `gorm:"type:text" json:"address"`
	Notes         string       `gorm:"type:text" json:"notes"`
	Subtotal      money.Amount `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	DeliveryFee   money.Amount `gorm:"type:decimal(10,2);not null" json:"deliveryFee"`
	Total         money.Amount `gorm:"type:decimal(10,2);not null" json:"total"`
	Status        OrderStatus  `gorm:"size:20;not null;default:pending;index" json:"status"`
	UserID        *uint        `gorm:"index" json:"userId,omitempty"` // nil for guest checkout
	Items         []OrderItem  `gorm:"constraint:OnDelete:CASCADE" json:"items"`
}

// OrderItem is one snapshotted line of an order.
type OrderItem struct {
	gorm.Model
	OrderID     uint         `gorm:"not null;index" json:"-"`
	ProductID   uint         `gorm:"not null" json:"productId"`
	ProductName string       `gorm:"size:255;not null" json:"productName"`
	UnitPrice   money.Amount `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	Quantity    int          `gorm:"not null" json:"quantity"`
	LineTotal   money.Amount `gorm:"type:decimal(10,2);not null" json:"lineTotal"`
}
