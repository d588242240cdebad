package repositories

import (
	"github.com/pamleeskitchen/bakehouse/app/models"
	"github.com/pamleeskitchen/bakehouse/pkg/orm"
)

// OrderRepository handles database operations for Order and OrderItem.
type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// CreateWithItems persists the order header and all its items in a single
// transaction. Either everything lands or nothing does.
func (r *OrderRepository) CreateWithItems(order *models.Order) error {
	return orm.Transaction(func(tx *orm.Query) error {
		return tx.Create(order)
	})
}

// FindByNumber looks up an order by its public order number, items
// included.
func (r *OrderRepository) FindByNumber(number string) (models.Order, error) {
	var order models.Order
	err := orm.DB().
		Model(&models.Order{}).
		Preload("Items").
		Where("order_number = ?", number).
		First(&order)
	return order, err
}

// FindByID looks up an order by primary key, items included.
func (r *OrderRepository) FindByID(id uint) (models.Order, error) {
	var order models.Order
	err := orm.DB().
		Model(&models.Order{}).
		Preload("Items").
		Where("id = ?", id).
		First(&order)
	return order, err
}

// All returns orders newest-first with pagination, optionally filtered by
// status ("" means all).
func (r *OrderRepository) All(status string, page, limit int) ([]models.Order, orm.Pagination, error) {
	q := orm.DB().Model(&models.Order{}).Preload("Items").Order("created_at desc")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var orders []models.Order
	pagination, err := q.GetWithPagination(&orders, page, limit)
	return orders, pagination, err
}

// ByCustomerEmail returns a customer's orders newest-first.
func (r *OrderRepository) ByCustomerEmail(email string) ([]models.Order, error) {
	var orders []models.Order
	err := orm.DB().
		Model(&models.Order{}).
		Preload("Items").
		Where("customer_email = ?", email).
		Order("created_at desc").
		Get(&orders)
	return orders, err
}

// ByCustomer returns every order belonging to a registered customer,
// including guest orders placed with the same email before signup.
func (r *OrderRepository) ByCustomer(userID uint, email string) ([]models.Order, error) {
	var orders []models.Order
	err := orm.DB().
		Model(&models.Order{}).
		Preload("Items").
		Where("user_id = ? OR customer_email = ?", userID, email).
		Order("created_at desc").
		Get(&orders)
	return orders, err
}

// Update persists changes to an order header.
func (r *OrderRepository) Update(order *models.Order) error {
	return orm.DB().Save(order)
}

// CountByStatus returns how many orders sit in each status, for the admin
// dashboard.
func (r *OrderRepository) CountByStatus() (map[models.OrderStatus]int64, error) {
	type row struct {
		Status models.OrderStatus
		N      int64
	}
	var rows []row
	err := orm.DB().Gorm().
		Model(&models.Order{}).
		Select("status, count(*) as n").
		Group("status").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[models.OrderStatus]int64, len(rows))
	for _, r := range rows {
		out[r.Status] = r.N
	}
	return out, nil
}
