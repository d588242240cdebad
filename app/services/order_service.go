package services

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/pamleeskitchen/bakehouse/app/models"
	"github.com/pamleeskitchen/bakehouse/app/repositories"
	"github.com/pamleeskitchen/bakehouse/config"
	"github.com/pamleeskitchen/bakehouse/internal/cart"
	"github.com/pamleeskitchen/bakehouse/internal/money"
	"github.com/pamleeskitchen/bakehouse/internal/pricing"
	"github.com/pamleeskitchen/bakehouse/pkg/event"
	"github.com/pamleeskitchen/bakehouse/pkg/metrics"
	"github.com/pamleeskitchen/bakehouse/pkg/orm"
)

var (
	ErrEmptyOrder           = errors.New("order has no items")
	ErrProductUnavailable   = errors.New("product is not available")
	ErrOrderNotFound        = errors.New("order not found")
	ErrCancelWindowClosed   = errors.New("orders can only be cancelled within 24 hours of placement")
	ErrCancelNotPending     = errors.New("only pending orders can be cancelled")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrOrderNumberExhausted = errors.New("could not generate a unique order number")
)

// orderStore is the slice of OrderRepository the service depends on.
type orderStore interface {
	CreateWithItems(order *models.Order) error
	FindByNumber(number string) (models.Order, error)
	FindByID(id uint) (models.Order, error)
	Update(order *models.Order) error
	All(status string, page, limit int) ([]models.Order, orm.Pagination, error)
	ByCustomerEmail(email string) ([]models.Order, error)
}

// productSource resolves cart entries into priced products.
type productSource interface {
	PricedProducts(ids []uint) ([]pricing.PricedProduct, error)
}

type OrderService struct {
	orders  orderStore
	catalog productSource
	now     func() time.Time
}

func NewOrderService() *OrderService {
	return &OrderService{
		orders:  repositories.NewOrderRepository(),
		catalog: NewCatalogService(),
		now:     time.Now,
	}
}

// CheckoutInput carries the validated checkout form plus the session cart.
type CheckoutInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	DeliveryType  pricing.DeliveryType
	PaymentMethod string
	Address       string
	Notes         string
	UserID        *uint
	Cart          *cart.Cart
}

// Quote prices a cart without placing an order. Used by the checkout
// page to show totals before submission.
func (s *OrderService) Quote(c *cart.Cart, deliveryType pricing.DeliveryType) (pricing.Quote, error) {
	products, err := s.catalog.PricedProducts(productIDs(c))
	if err != nil {
		return pricing.Quote{}, err
	}
	return pricing.Price(c, products, deliveryType, money.New(config.DeliveryFee())), nil
}

// Create prices the cart, snapshots product names and prices into order
// items, and persists the order under a fresh order number.
func (s *OrderService) Create(in CheckoutInput) (models.Order, error) {
	if in.Cart == nil || in.Cart.IsEmpty() {
		return models.Order{}, ErrEmptyOrder
	}

	products, err := s.catalog.PricedProducts(productIDs(in.Cart))
	if err != nil {
		return models.Order{}, err
	}

	// Quote silently drops unknown entries so stale carts still price,
	// but placing an order with one is an error the customer must see.
	priced := make(map[uint]bool, len(products))
	for _, p := range products {
		priced[p.ID] = true
	}
	for _, line := range in.Cart.Lines() {
		if !priced[line.ProductID] {
			return models.Order{}, fmt.Errorf("%w: product %d", ErrProductUnavailable, line.ProductID)
		}
	}

	quote := pricing.Price(in.Cart, products, in.DeliveryType, money.New(config.DeliveryFee()))

	items := make([]models.OrderItem, 0, len(quote.Lines))
	for _, line := range quote.Lines {
		items = append(items, models.OrderItem{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
			LineTotal:   line.LineTotal,
		})
	}

	order := models.Order{
		CustomerName:  in.CustomerName,
		CustomerEmail: strings.ToLower(strings.TrimSpace(in.CustomerEmail)),
		CustomerPhone: in.CustomerPhone,
		DeliveryType:  string(in.DeliveryType),
		PaymentMethod: in.PaymentMethod,
		Address:       in.Address,
		Notes:         in.Notes,
		Subtotal:      quote.Subtotal,
		DeliveryFee:   quote.DeliveryFee,
		Total:         quote.Total,
		Status:        models.StatusPending,
		UserID:        in.UserID,
		Items:         items,
	}

	// Order numbers embed a millisecond timestamp so collisions are
	// rare; on a duplicate key we retry with a fresh suffix.
	for attempt := 0; attempt < 5; attempt++ {
		order.OrderNumber = s.newOrderNumber()
		err := s.orders.CreateWithItems(&order)
		if err == nil {
			metrics.OrdersCreated.WithLabelValues(order.DeliveryType).Inc()
			event.Fire("order.created", order)
			return order, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Order{}, err
		}
	}
	return models.Order{}, ErrOrderNumberExhausted
}

// Track returns an order by its public order number.
func (s *OrderService) Track(number string) (models.Order, error) {
	order, err := s.orders.FindByNumber(strings.TrimSpace(number))
	if err != nil {
		return models.Order{}, ErrOrderNotFound
	}
	return order, nil
}

// History returns a customer's past orders newest-first.
func (s *OrderService) History(email string) ([]models.Order, error) {
	return s.orders.ByCustomerEmail(strings.ToLower(strings.TrimSpace(email)))
}

// Cancel marks an order cancelled. Customers may cancel only while the
// order is still pending and no more than the cancellation window (24
// hours by default) has passed since placement.
func (s *OrderService) Cancel(number string) (models.Order, error) {
	order, err := s.orders.FindByNumber(strings.TrimSpace(number))
	if err != nil {
		return models.Order{}, ErrOrderNotFound
	}
	return s.cancel(order)
}

// CancelByID is the same cancellation with the database id instead of
// the public order number. Same window and status rules apply.
func (s *OrderService) CancelByID(id uint) (models.Order, error) {
	order, err := s.orders.FindByID(id)
	if err != nil {
		return models.Order{}, ErrOrderNotFound
	}
	return s.cancel(order)
}

func (s *OrderService) cancel(order models.Order) (models.Order, error) {
	if order.Status != models.StatusPending {
		return models.Order{}, ErrCancelNotPending
	}
	if s.now().Sub(order.CreatedAt) > config.OrderCancelWindow() {
		return models.Order{}, ErrCancelWindowClosed
	}

	order.Status = models.StatusCancelled
	if err := s.orders.Update(&order); err != nil {
		return models.Order{}, err
	}

	metrics.OrdersCancelled.Inc()
	event.Fire("order.cancelled", order)
	return order, nil
}

// UpdateStatus moves an order along its lifecycle. Admin only; the
// transition table rejects skips and moves out of terminal states.
func (s *OrderService) UpdateStatus(id uint, next models.OrderStatus) (models.Order, error) {
	if !next.Valid() {
		return models.Order{}, ErrInvalidTransition
	}

	order, err := s.orders.FindByID(id)
	if err != nil {
		return models.Order{}, ErrOrderNotFound
	}
	if !order.Status.CanTransition(next) {
		return models.Order{}, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, order.Status, next)
	}

	order.Status = next
	if err := s.orders.Update(&order); err != nil {
		return models.Order{}, err
	}

	metrics.OrderStatusChanges.WithLabelValues(string(next)).Inc()
	event.Fire("order.status_changed", order)
	return order, nil
}

// All lists orders for the admin panel, optionally filtered by status.
func (s *OrderService) All(status string, page, limit int) ([]models.Order, orm.Pagination, error) {
	return s.orders.All(status, page, limit)
}

// Find returns a single order by id for the admin panel.
func (s *OrderService) Find(id uint) (models.Order, error) {
	order, err := s.orders.FindByID(id)
	if err != nil {
		return models.Order{}, ErrOrderNotFound
	}
	return order, nil
}

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func (s *OrderService) newOrderNumber() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = base36[rand.Intn(len(base36))]
	}
	return fmt.Sprintf("ORD-%d-%s", s.now().UnixMilli(), suffix)
}

func productIDs(c *cart.Cart) []uint {
	lines := c.Lines()
	ids := make([]uint, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}
	return ids
}
