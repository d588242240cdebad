package controllers

import (
	"net/http"
	"strconv"

	"github.com/pamleeskitchen/bakehouse/app/services"
	"github.com/pamleeskitchen/bakehouse/pkg/response"
	"github.com/pamleeskitchen/bakehouse/pkg/router"
)

type CatalogController struct {
	service *services.CatalogService
}

func NewCatalogController() *CatalogController {
	return &CatalogController{service: services.NewCatalogService()}
}

// Index lists available products, optionally filtered by ?category=
// or narrowed to the homepage picks with ?featured=true.
func (c *CatalogController) Index(w http.ResponseWriter, r *http.Request) {
	featured := r.URL.Query().Get("featured") == "true"
	products, err := c.service.Available(r.URL.Query().Get("category"), featured)
	if err != nil {
		response.ServerError(w, "could not load products")
		return
	}
	response.Success(w, products)
}

// Categories lists the distinct categories of available products.
func (c *CatalogController) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.service.Categories()
	if err != nil {
		response.ServerError(w, "could not load categories")
		return
	}
	response.Success(w, categories)
}

// Show returns a single product.
func (c *CatalogController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r, "id")
	if err != nil {
		response.BadRequest(w, "invalid product id")
		return
	}

	product, err := c.service.Find(id)
	if err != nil {
		response.NotFound(w, "product not found")
		return
	}
	response.Success(w, product)
}

// paramID parses a numeric route parameter.
func paramID(r *http.Request, key string) (uint, error) {
	id, err := strconv.ParseUint(router.Param(r, key), 10, 32)
	return uint(id), err
}

// pageParams reads ?page= and ?limit= with sane defaults.
func pageParams(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	return page, limit
}
