package services

import (
	"sort"

	"github.com/pamleeskitchen/bakehouse/app/models"
	"github.com/pamleeskitchen/bakehouse/app/repositories"
	"github.com/pamleeskitchen/bakehouse/internal/pricing"
	"github.com/pamleeskitchen/bakehouse/pkg/orm"
)

type CatalogService struct {
	products *repositories.ProductRepository
}

func NewCatalogService() *CatalogService {
	return &CatalogService{products: repositories.NewProductRepository()}
}

// Available returns the products shown in the storefront, optionally
// filtered by category or down to featured items only.
func (s *CatalogService) Available(category string, featuredOnly bool) ([]models.Product, error) {
	products, err := s.products.AllAvailable()
	if err != nil {
		return nil, err
	}
	if category == "" && !featuredOnly {
		return products, nil
	}
	filtered := products[:0:0]
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if featuredOnly && !p.Featured {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}

// Categories lists the distinct categories of available products.
func (s *CatalogService) Categories() ([]string, error) {
	products, err := s.products.AllAvailable()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var categories []string
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; !ok {
			seen[p.Category] = struct{}{}
			categories = append(categories, p.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// Find returns a single product by id.
func (s *CatalogService) Find(id uint) (models.Product, error) {
	return s.products.FindByID(id)
}

// All returns every product, available or not, for the admin panel.
func (s *CatalogService) All(page, limit int) ([]models.Product, orm.Pagination, error) {
	return s.products.All(page, limit)
}

// PricedProducts resolves a set of product ids into pricing inputs.
// Unavailable products are excluded so stale carts cannot order them.
func (s *CatalogService) PricedProducts(ids []uint) ([]pricing.PricedProduct, error) {
	products, err := s.products.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	priced := make([]pricing.PricedProduct, 0, len(products))
	for _, p := range products {
		if !p.Available {
			continue
		}
		priced = append(priced, pricing.PricedProduct{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price,
		})
	}
	return priced, nil
}

func (s *CatalogService) Create(p *models.Product) error {
	return s.products.Create(p)
}

func (s *CatalogService) Update(p *models.Product) error {
	return s.products.Update(p)
}

func (s *CatalogService) Delete(p *models.Product) error {
	return s.products.Delete(p)
}
