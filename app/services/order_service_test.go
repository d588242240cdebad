package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pamleeskitchen/bakehouse/app/models"
	"github.com/pamleeskitchen/bakehouse/internal/cart"
	"github.com/pamleeskitchen/bakehouse/internal/money"
	"github.com/pamleeskitchen/bakehouse/internal/pricing"
	"github.com/pamleeskitchen/bakehouse/pkg/orm"
)

type fakeOrderStore struct {
	orders     map[string]models.Order
	nextID     uint
	failCreate int // fail the first n creates with a duplicate-key error
	creates    int
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: map[string]models.Order{}}
}

func (f *fakeOrderStore) CreateWithItems(order *models.Order) error {
	f.creates++
	if f.creates <= f.failCreate {
		return gorm.ErrDuplicatedKey
	}
	f.nextID++
	order.ID = f.nextID
	f.orders[order.OrderNumber] = *order
	return nil
}

func (f *fakeOrderStore) FindByNumber(number string) (models.Order, error) {
	order, ok := f.orders[number]
	if !ok {
		return models.Order{}, gorm.ErrRecordNotFound
	}
	return order, nil
}

func (f *fakeOrderStore) FindByID(id uint) (models.Order, error) {
	for _, order := range f.orders {
		if order.ID == id {
			return order, nil
		}
	}
	return models.Order{}, gorm.ErrRecordNotFound
}

func (f *fakeOrderStore) Update(order *models.Order) error {
	f.orders[order.OrderNumber] = *order
	return nil
}

func (f *fakeOrderStore) All(status string, page, limit int) ([]models.Order, orm.Pagination, error) {
	var out []models.Order
	for _, order := range f.orders {
		if status == "" || string(order.Status) == status {
			out = append(out, order)
		}
	}
	return out, orm.Pagination{Page: page, PerPage: limit, Total: int64(len(out))}, nil
}

func (f *fakeOrderStore) ByCustomerEmail(email string) ([]models.Order, error) {
	var out []models.Order
	for _, order := range f.orders {
		if order.CustomerEmail == email {
			out = append(out, order)
		}
	}
	return out, nil
}

type fakeCatalog struct {
	products []pricing.PricedProduct
}

func (f *fakeCatalog) PricedProducts(ids []uint) ([]pricing.PricedProduct, error) {
	var out []pricing.PricedProduct
	for _, id := range ids {
		for _, p := range f.products {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func testCatalog() *fakeCatalog {
	return &fakeCatalog{products: []pricing.PricedProduct{
		{ID: 1, Name: "Chocolate Layer Cake", Price: money.MustFromString("450.00")},
		{ID: 2, Name: "Fresh Croissants", Price: money.MustFromString("25.00")},
	}}
}

func newTestOrderService(store *fakeOrderStore, now time.Time) *OrderService {
	return &OrderService{
		orders:  store,
		catalog: testCatalog(),
		now:     func() time.Time { return now },
	}
}

func testCart(t *testing.T) *cart.Cart {
	t.Helper()
	c := cart.New()
	require.NoError(t, c.SetItem(1, 2))
	require.NoError(t, c.SetItem(2, 1))
	return c
}

func TestOrderServiceCreate(t *testing.T) {
	store := newFakeOrderStore()
	svc := newTestOrderService(store, time.Now())

	order, err := svc.Create(CheckoutInput{
		CustomerName:  "Dana Reyes",
		CustomerEmail: "Dana@Example.com",
		CustomerPhone: "555-0101",
		DeliveryType:  pricing.Delivery,
		PaymentMethod: "card",
		Address:       "12 Rosemary Lane",
		Cart:          testCart(t),
	})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^ORD-\d+-[0-9A-Z]{9}$`), order.OrderNumber)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, "dana@example.com", order.CustomerEmail)
	assert.Equal(t, "card", order.PaymentMethod)
	assert.Equal(t, "925.00", order.Subtotal.String())
	assert.Equal(t, "50.00", order.DeliveryFee.String())
	assert.Equal(t, "975.00", order.Total.String())

	require.Len(t, order.Items, 2)
	assert.Equal(t, "Chocolate Layer Cake", order.Items[0].ProductName)
	assert.Equal(t, "450.00", order.Items[0].UnitPrice.String())
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, "900.00", order.Items[0].LineTotal.String())
}

func TestOrderServiceCreateLinksCustomerAccount(t *testing.T) {
	svc := newTestOrderService(newFakeOrderStore(), time.Now())
	userID := uint(7)

	order, err := svc.Create(CheckoutInput{
		CustomerName:  "Dana Reyes",
		CustomerEmail: "dana@example.com",
		DeliveryType:  pricing.Pickup,
		UserID:        &userID,
		Cart:          testCart(t),
	})
	require.NoError(t, err)

	require.NotNil(t, order.UserID)
	assert.Equal(t, uint(7), *order.UserID)
}

func TestOrderServiceCreatePickupSkipsFee(t *testing.T) {
	svc := newTestOrderService(newFakeOrderStore(), time.Now())

	order, err := svc.Create(CheckoutInput{
		CustomerName:  "Dana Reyes",
		CustomerEmail: "dana@example.com",
		DeliveryType:  pricing.Pickup,
		Cart:          testCart(t),
	})
	require.NoError(t, err)
	assert.True(t, order.DeliveryFee.IsZero())
	assert.Equal(t, "925.00", order.Total.String())
}

func TestOrderServiceCreateEmptyCart(t *testing.T) {
	svc := newTestOrderService(newFakeOrderStore(), time.Now())

	_, err := svc.Create(CheckoutInput{
		CustomerName: "Dana Reyes",
		DeliveryType: pricing.Pickup,
		Cart:         cart.New(),
	})
	assert.ErrorIs(t, err, ErrEmptyOrder)

	_, err = svc.Create(CheckoutInput{CustomerName: "Dana Reyes"})
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestOrderServiceCreateUnavailableProduct(t *testing.T) {
	svc := newTestOrderService(newFakeOrderStore(), time.Now())

	c := cart.New()
	require.NoError(t, c.SetItem(1, 1))
	require.NoError(t, c.SetItem(99, 1)) // not in the catalog

	_, err := svc.Create(CheckoutInput{
		CustomerName: "Dana Reyes",
		DeliveryType: pricing.Pickup,
		Cart:         c,
	})
	assert.ErrorIs(t, err, ErrProductUnavailable)
}

func TestOrderServiceCreateRetriesOrderNumber(t *testing.T) {
	store := newFakeOrderStore()
	store.failCreate = 2
	svc := newTestOrderService(store, time.Now())

	order, err := svc.Create(CheckoutInput{
		CustomerName: "Dana Reyes",
		DeliveryType: pricing.Pickup,
		Cart:         testCart(t),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, store.creates)
	assert.NotEmpty(t, order.OrderNumber)
}

func TestOrderServiceCancel(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		status   models.OrderStatus
		placedAt time.Time
		wantErr  error
	}{
		{"pending inside window", models.StatusPending, now.Add(-23 * time.Hour), nil},
		{"pending outside window", models.StatusPending, now.Add(-25 * time.Hour), ErrCancelWindowClosed},
		{"already confirmed", models.StatusConfirmed, now.Add(-1 * time.Hour), ErrCancelNotPending},
		{"already cancelled", models.StatusCancelled, now.Add(-1 * time.Hour), ErrCancelNotPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeOrderStore()
			order := models.Order{
				OrderNumber:   "ORD-1749550000000-AAAAAAAAA",
				CustomerEmail: "dana@example.com",
				Status:        tt.status,
			}
			order.ID = 1
			order.CreatedAt = tt.placedAt
			store.orders[order.OrderNumber] = order

			svc := newTestOrderService(store, now)
			got, err := svc.Cancel(order.OrderNumber)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				stored, _ := store.FindByNumber(order.OrderNumber)
				assert.Equal(t, tt.status, stored.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.StatusCancelled, got.Status)
		})
	}
}

func TestOrderServiceCancelByID(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	store := newFakeOrderStore()
	order := models.Order{OrderNumber: "ORD-1749550000000-CCCCCCCCC", Status: models.StatusPending}
	order.ID = 4
	order.CreatedAt = now.Add(-2 * time.Hour)
	store.orders[order.OrderNumber] = order

	svc := newTestOrderService(store, now)
	got, err := svc.CancelByID(4)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, got.Status)

	_, err = svc.CancelByID(99)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderServiceCancelUnknownOrder(t *testing.T) {
	svc := newTestOrderService(newFakeOrderStore(), time.Now())
	_, err := svc.Cancel("ORD-0-ZZZZZZZZZ")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderServiceUpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		from    models.OrderStatus
		to      models.OrderStatus
		wantErr bool
	}{
		{"pending to confirmed", models.StatusPending, models.StatusConfirmed, false},
		{"confirmed to preparing", models.StatusConfirmed, models.StatusPreparing, false},
		{"ready to completed", models.StatusReady, models.StatusCompleted, false},
		{"pending skips to ready", models.StatusPending, models.StatusReady, true},
		{"completed is terminal", models.StatusCompleted, models.StatusConfirmed, true},
		{"cancelled is terminal", models.StatusCancelled, models.StatusPending, true},
		{"unknown status", models.StatusPending, models.OrderStatus("shipped"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeOrderStore()
			order := models.Order{OrderNumber: "ORD-1749550000000-BBBBBBBBB", Status: tt.from}
			order.ID = 7
			store.orders[order.OrderNumber] = order

			svc := newTestOrderService(store, time.Now())
			got, err := svc.UpdateStatus(7, tt.to)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTransition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, got.Status)
		})
	}
}
