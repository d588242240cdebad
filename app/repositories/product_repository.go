package repositories

import (
	"time"

	"github.com/pamleeskitchen/bakehouse/app/models"
	"github.com/pamleeskitchen/bakehouse/pkg/cache"
	"github.com/pamleeskitchen/bakehouse/pkg/orm"
)

const productsCacheKey = "bakehouse:catalog:products"

// ProductRepository handles database operations for Product.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// AllAvailable returns the customer-facing catalog, cached for a minute.
func (r *ProductRepository) AllAvailable() ([]models.Product, error) {
	var products []models.Product
	err := orm.DB().
		Model(&models.Product{}).
		Where("available = ?", true).
		Order("sort_order asc, name asc").
		Cache(productsCacheKey, time.Minute, &products)
	return products, err
}

// All returns every product with pagination, for the admin panel.
func (r *ProductRepository) All(page, limit int) ([]models.Product, orm.Pagination, error) {
	var products []models.Product
	pagination, err := orm.DB().
		Model(&models.Product{}).
		Order("sort_order asc, name asc").
		GetWithPagination(&products, page, limit)
	return products, pagination, err
}

// FindByID looks up a product by primary key.
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	var product models.Product
	err := orm.DB().Model(&models.Product{}).Where("id = ?", id).First(&product)
	return product, err
}

// FindByIDs returns the products matching ids, in no particular order.
func (r *ProductRepository) FindByIDs(ids []uint) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []models.Product
	err := orm.DB().Model(&models.Product{}).Where("id IN ?", ids).Get(&products)
	return products, err
}

// Create persists a new product and invalidates the catalog cache.
func (r *ProductRepository) Create(product *models.Product) error {
	if err := orm.DB().Create(product); err != nil {
		return err
	}
	cache.Forget(productsCacheKey)
	return nil
}

// Update persists changes to an existing product.
func (r *ProductRepository) Update(product *models.Product) error {
	if err := orm.DB().Save(product); err != nil {
		return err
	}
	cache.Forget(productsCacheKey)
	return nil
}

// Delete soft-deletes a product. The catalog cache is invalidated; order
// items keep their snapshot.
func (r *ProductRepository) Delete(product *models.Product) error {
	if err := orm.DB().Delete(product); err != nil {
		return err
	}
	cache.Forget(productsCacheKey)
	return nil
}
