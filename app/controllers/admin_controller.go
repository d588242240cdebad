package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/pamleeskitchen/bakehouse/app/models"
	"github.com/pamleeskitchen/bakehouse/app/repositories"
	"github.com/pamleeskitchen/bakehouse/app/services"
	"github.com/pamleeskitchen/bakehouse/internal/money"
	"github.com/pamleeskitchen/bakehouse/pkg/bind"
	"github.com/pamleeskitchen/bakehouse/pkg/response"
	"github.com/pamleeskitchen/bakehouse/pkg/storage"
)

// AdminController backs the admin panel: product, order, special,
// gallery, contact, customer, and settings management. Every route is
// behind the auth and admin middleware.
type AdminController struct {
	catalog *services.CatalogService
	orders  *services.OrderService
	content *services.ContentService
	users   *repositories.UserRepository
}

func NewAdminController() *AdminController {
	return &AdminController{
		catalog: services.NewCatalogService(),
		orders:  services.NewOrderService(),
		content: services.NewContentService(),
		users:   repositories.NewUserRepository(),
	}
}

// ── Products ─────────────────────────────────────────────────────────────────

type productForm struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Description string `json:"description" validate:"nullable,max=2000"`
	Price       string `json:"price" validate:"required,decimal"`
	Category    string `json:"category" validate:"nullable,max=100"`
	ImageURL    string `json:"imageUrl" validate:"nullable,url,max=512"`
	Available   *bool  `json:"available"`
	Featured    *bool  `json:"featured"`
	SortOrder   int    `json:"sortOrder" validate:"nullable,gte=0"`
}

func (f productForm) apply(p *models.Product) {
	p.Name = f.Name
	p.Description = f.Description
	p.Price = money.MustFromString(f.Price)
	p.Category = f.Category
	p.ImageURL = f.ImageURL
	p.SortOrder = f.SortOrder
	if f.Available != nil {
		p.Available = *f.Available
	}
	if f.Featured != nil {
		p.Featured = *f.Featured
	}
}

// Products lists every product, including unavailable ones.
func (c *AdminController) Products(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	products, pagination, err := c.catalog.All(page, limit)
	if err != nil {
		response.ServerError(w, "could not load products")
		return
	}
	response.Paginated(w, products, pagination)
}

func (c *AdminController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var form productForm
	if fails, err := bind.JSONValidated(w, r, &form); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	} else if len(fails) > 0 {
		response.ValidationError(w, fails)
		return
	}

	product := models.Product{Available: true}
	form.apply(&product)
	if err := c.catalog.Create(&product); err != nil {
		response.ServerError(w, "could not create product")
		return
	}
	response.Created(w, product)
}

func (c *AdminController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r, "id")
	if err != nil {
		response.BadRequest(w, "invalid product id")
		return
	}
	product, err := c.catalog.Find(id)
	if err != nil {
		response.NotFound(w, "product not found")
		return
	}

	var form productForm
	if fails, err := bind.JSONValidated(w, r, &form); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	} else if len(fails) > 0 {
		response.ValidationError(w, fails)
		return
	}

	form.apply(&product)
	if err := c.catalog.Update(&product); err != nil {
		response.ServerError(w, "could not update product")
		return
	}
	response.Success(w, product)
}

// ToggleProductStock flips a product's availability without touching
// the rest of the record. Backs the in-stock switch on the product list.
func (c *AdminController) ToggleProductStock(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r, "id")
	if err != nil {
		response.BadRequest(w, "invalid product id")
		return
	}
	product, err := c.catalog.Find(id)
	if err != nil {
		response.NotFound(w, "product not found")
		return
	}

	product.Available = !product.Available
	if err := c.catalog.Update(&product); err != nil {
		response.ServerError(w, "could not update product")
		return
	}
	response.Success(w, product)
}

func (c *AdminController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r, "id")
	if err != nil {
		response.BadRequest(w, "invalid product id")
		return
	}
	product, err := c.catalog.Find(id)
	if err != nil {
		response.NotFound(w, "product not found")
		return
	}
	if err := c.catalog.Delete(&product); err != nil {
		response.ServerError(w, "could not delete product")
		return
	}
	response.Success(w, map[string]string{"message": "product deleted"})
}

// ── Orders ───────────────────────────────────────────────────────────────────

// Orders lists orders newest-first, optionally filtered by ?status=.
func (c *AdminController) Orders(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	orders, pagination, err := c.orders.All(r.URL.Query().Get("status"), page, limit)
	if err != nil {
		response.ServerError(w, "could not load orders")
		return
	}
	response.Paginated(w, orders, pagination)
}

func (c *AdminController) Order(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r, "id")
	if err != nil {
		response.BadRequest(w, "invalid order id")
		return
	}
	order, err := c.orders.Find(id)
	if err != nil {
		response.NotFound(w, "order not found")
		return
	}
	response.Success(w, order)
}

type statusForm struct {
	Status string `json:"status" validate:"required,in=pending,confirmed,preparing,ready,completed,cancelled"`
}

// UpdateOrderStatus moves an order along its lifecycle.
func (c *AdminController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r, "id")
	if err != nil {
		response.BadRequest(w, "invalid order id")
		return
	}

	var form statusForm
	if fails, err := bind.JSONValidated(w, r, &form); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	} else if len(fails) > 0 {
		response.ValidationError(w, fails)
		return
	}

	order, err := c.orders.UpdateStatus(id, models.OrderStatus(form.Status))
	switch {
	case err == nil:
		response.Success(w, order)
	case errors.Is(err, services.ErrOrderNotFound):
		response.NotFound(w, "order not found")
	case errors.Is(err, services.ErrInvalidTransition):
		response.Error(w, http.StatusConflict, err.Error())
	default:
		response.ServerError(w, "could not update order")
	}
}

// OrderStats returns order counts grouped by status for the dashboard.
func (c *AdminController) OrderStats(w http.ResponseWriter, r *http.Request) {
	counts, err := repositories.NewOrderRepository().CountByStatus()
	if err != nil {
		response.ServerError(w, "could not load stats")
		return
	}
	response.Success(w, counts)
}

// ── Specials ─────────────────────────────────────────────────────────────────

type specialForm struct {
	Title           string `json:"title" validate:"required,min=2,max=255"`
	Description     string `json:"description" validate:"nullable,max=2000"`
	DiscountPercent int    `json:"discountPercent" validate:"required,integer,gte=1,lte=100"`
	ImageURL        string `json:"imageUrl" validate:"nullable,url,max=512"`
	Active          *bool  `json:"active"`
	ValidFrom       string `json:"validFrom" validate:"nullable,date"`
	ValidUntil      string `json:"validUntil" validate:"nullable,date"`
}

func (f specialForm) apply(s *models.Special) error {
	s.Title = f.Title
	s.Description = f.Description
	s.DiscountPercent = f.DiscountPercent
	s.ImageURL = f.ImageURL
	if f.Active != nil {
		s.Active = *f.Active
	}

	var err error
	if s.ValidFrom, err = optionalDate(f.ValidFrom); err != nil {
		return err
	}
	if s.ValidUntil, err = optionalDate(f.ValidUntil); err != nil {
		return err
	}
	if s.ValidFrom != nil && s.ValidUntil != nil && !s.ValidFrom.Before(*s.ValidUntil) {
		return fmt.Errorf("validUntil must be after validFrom")
	}
	return nil
}

func (c *AdminController) Specials(w http.ResponseWriter, r *http.Request) {
	specials, err := c.content.AllSpecials()
	if err != nil {
		response.ServerError(w, "could not load specials")
		return
	}
	response.Success(w, specials)
}

func (c *AdminController) CreateSpecial(w http.ResponseWriter, r *http.Request) {
	var form specialForm
	if fails, err := bind.JSONValidated(w, r, &form); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	} else if len(fails) > 0 {
		response.ValidationError(w, fails)
		return
	}

	special := models.Special{Active: true}
	if err := form.apply(&special); err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if err := c.content.SaveSpecial(&special); err != nil {
		response.ServerError(w, "could not create special")
		return
	}
	response.Created(w, special)
}

func (c *AdminController) UpdateSpecial(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r, "id")
	if err != nil {
		response.BadRequest(w, "invalid special id")
		return
	}
	special, err := c.content.FindSpecial(id)
	if err != nil {
		response.NotFound(w, "special not found")
		return
	}

	var form specialForm
	if fails, err := bind.JSONValidated(w, r, &form); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	} else if len(fails) > 0 {
		response.ValidationError(w, fails)
		return
	}

	if err := form.apply(&special); err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if err := c.content.SaveSpecial(&special); err != nil {
		response.ServerError(w, "could not update special")
		return
	}
	response.Success(w, special)
}

func (c *AdminController) DeleteSpecial(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r, "id")
	if err != nil {
		response.BadRequest(w, "invalid special id")
		return
	}
	if err := c.content.DeleteSpecial(id); err != nil {
		response.NotFound(w, "special not found")
		return
	}
	response.Success(w, map[string]string{"message": "special deleted"})
}

// ── Gallery ──────────────────────────────────────────────────────────────────

const maxUploadSize = 10 << 20 // 10 MiB

// UploadGalleryImage accepts a multipart upload and stores the file on
// the configured disk.
func (c *AdminController) UploadGalleryImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "invalid upload")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.ValidationError(w, map[string]string{"image": "The image field is required."})
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
	default:
		response.ValidationError(w, map[string]string{"image": "The image must be a jpg, png, gif, or webp file."})
		return
	}

	path := fmt.Sprintf("gallery/%d%s", time.Now().UnixMilli(), ext)
	if err := storage.PutStream(path, file); err != nil {
		response.ServerError(w, "could not store image")
		return
	}

	img := models.GalleryImage{
		Caption:  r.FormValue("caption"),
		Category: r.FormValue("category"),
		ImageURL: storage.URL(path),
		Path:     path,
	}
	if err := c.content.AddGalleryImage(&img); err != nil {
		_ = storage.Delete(path)
		response.ServerError(w, "could not save image")
		return
	}
	response.Created(w, img)
}

type galleryImageForm struct {
	Caption   string `json:"caption" validate:"nullable,max=255"`
	Category  string `json:"category" validate:"nullable,max=100"`
	ImageURL  string `json:"imageUrl" validate:"required,url,max=512"`
	SortOrder int    `json:"sortOrder" validate:"integer,gte=0"`
}

// CreateGalleryImage records an image hosted elsewhere by URL. Uploads
// go through UploadGalleryImage instead.
func (c *AdminController) CreateGalleryImage(w http.ResponseWriter, r *http.Request) {
	var form galleryImageForm
	if fails, err := bind.JSONValidated(w, r, &form); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	} else if len(fails) > 0 {
		response.ValidationError(w, fails)
		return
	}

	img := models.GalleryImage{
		Caption:   form.Caption,
		Category:  form.Category,
		ImageURL:  form.ImageURL,
		SortOrder: form.SortOrder,
	}
	if err := c.content.AddGalleryImage(&img); err != nil {
		response.ServerError(w, "could not save image")
		return
	}
	response.Created(w, img)
}

func (c *AdminController) DeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r, "id")
	if err != nil {
		response.BadRequest(w, "invalid image id")
		return
	}
	if err := c.content.DeleteGalleryImage(id); err != nil {
		response.NotFound(w, "image not found")
		return
	}
	response.Success(w, map[string]string{"message": "image deleted"})
}

// ── Contact messages ─────────────────────────────────────────────────────────

func (c *AdminController) ContactMessages(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	msgs, pagination, err := c.content.ContactMessages(page, limit)
	if err != nil {
		response.ServerError(w, "could not load messages")
		return
	}
	response.Paginated(w, msgs, pagination)
}

func (c *AdminController) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r, "id")
	if err != nil {
		response.BadRequest(w, "invalid message id")
		return
	}
	if err := c.content.MarkContactMessageRead(id); err != nil {
		response.ServerError(w, "could not update message")
		return
	}
	response.Success(w, map[string]string{"message": "marked as read"})
}

// ── Customers ────────────────────────────────────────────────────────────────

func (c *AdminController) Customers(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	users, pagination, err := c.users.All(page, limit)
	if err != nil {
		response.ServerError(w, "could not load customers")
		return
	}
	response.Paginated(w, users, pagination)
}

// CustomerOrders lists one customer's order history, guest orders under
// the same email included.
func (c *AdminController) CustomerOrders(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r, "id")
	if err != nil {
		response.BadRequest(w, "invalid customer id")
		return
	}
	user, err := c.users.FindByID(id)
	if err != nil {
		response.NotFound(w, "customer not found")
		return
	}

	orders, err := repositories.NewOrderRepository().ByCustomer(user.ID, user.Email)
	if err != nil {
		response.ServerError(w, "could not load orders")
		return
	}
	response.Success(w, orders)
}

// ── Settings ─────────────────────────────────────────────────────────────────

func (c *AdminController) Settings(w http.ResponseWriter, r *http.Request) {
	settings, err := c.content.Settings()
	if err != nil {
		response.ServerError(w, "could not load settings")
		return
	}
	response.Success(w, settings)
}

func (c *AdminController) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var values map[string]string
	if err := bind.JSON(w, r, &values); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := c.content.UpdateSettings(values); err != nil {
		response.ServerError(w, "could not save settings")
		return
	}
	settings, _ := c.content.Settings()
	response.Success(w, settings)
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as date", s)
}

func optionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
