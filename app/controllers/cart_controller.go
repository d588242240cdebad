package controllers

import (
	"errors"
	"net/http"

	"github.com/pamleeskitchen/bakehouse/app/services"
	"github.com/pamleeskitchen/bakehouse/internal/cart"
	"github.com/pamleeskitchen/bakehouse/internal/pricing"
	"github.com/pamleeskitchen/bakehouse/pkg/bind"
	"github.com/pamleeskitchen/bakehouse/pkg/response"
)

// CartController manages the session cart. The cart lives server-side
// keyed by the session cookie, so guests keep their cart across visits.
type CartController struct {
	orders *services.OrderService
}

func NewCartController() *CartController {
	return &CartController{orders: services.NewOrderService()}
}

type cartAddForm struct {
	ProductID uint `json:"productId" validate:"required,integer,gte=1"`
	Quantity  int  `json:"quantity" validate:"integer,gte=0,lte=50"`
}

type cartQuantityForm struct {
	Quantity int `json:"quantity" validate:"integer,gte=0,lte=50"`
}

// cartView is the priced cart response shared by all cart endpoints.
func (c *CartController) cartView(w http.ResponseWriter, r *http.Request, ct *cart.Cart) {
	deliveryType := pricing.DeliveryType(r.URL.Query().Get("deliveryType"))
	if !deliveryType.Valid() {
		deliveryType = pricing.Pickup
	}

	quote, err := c.orders.Quote(ct, deliveryType)
	if err != nil {
		response.ServerError(w, "could not price cart")
		return
	}
	response.Success(w, quote)
}

// Show returns the current cart priced as a quote.
func (c *CartController) Show(w http.ResponseWriter, r *http.Request) {
	c.cartView(w, r, cart.FromSession(r))
}

// AddItem increments a product's quantity. Quantity defaults to one
// when omitted, so the storefront's "add to cart" button can post bare
// product ids.
func (c *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	var form cartAddForm
	if fails, err := bind.JSONValidated(w, r, &form); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	} else if len(fails) > 0 {
		response.ValidationError(w, fails)
		return
	}
	if form.Quantity == 0 {
		form.Quantity = 1
	}

	ct := cart.FromSession(r)
	if err := ct.Add(form.ProductID, form.Quantity); err != nil {
		c.cartError(w, err)
		return
	}
	c.saveAndRender(w, r, ct)
}

// UpdateItem sets the absolute quantity for one product. Zero removes it.
func (c *CartController) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r, "productId")
	if err != nil {
		response.BadRequest(w, "invalid product id")
		return
	}

	var form cartQuantityForm
	if fails, err := bind.JSONValidated(w, r, &form); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	} else if len(fails) > 0 {
		response.ValidationError(w, fails)
		return
	}

	ct := cart.FromSession(r)
	if err := ct.SetItem(id, form.Quantity); err != nil {
		c.cartError(w, err)
		return
	}
	c.saveAndRender(w, r, ct)
}

func (c *CartController) cartError(w http.ResponseWriter, err error) {
	if errors.Is(err, cart.ErrQuantityTooLarge) {
		response.ValidationError(w, map[string]string{"quantity": err.Error()})
		return
	}
	response.BadRequest(w, err.Error())
}

func (c *CartController) saveAndRender(w http.ResponseWriter, r *http.Request, ct *cart.Cart) {
	if err := cart.Save(w, r, ct); err != nil {
		response.ServerError(w, "could not save cart")
		return
	}
	c.cartView(w, r, ct)
}

// RemoveItem drops one product from the cart.
func (c *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r, "productId")
	if err != nil {
		response.BadRequest(w, "invalid product id")
		return
	}

	ct := cart.FromSession(r)
	ct.Remove(id)
	c.saveAndRender(w, r, ct)
}

// Clear empties the cart.
func (c *CartController) Clear(w http.ResponseWriter, r *http.Request) {
	ct := cart.FromSession(r)
	ct.Clear()

	if err := cart.Save(w, r, ct); err != nil {
		response.ServerError(w, "could not save cart")
		return
	}
	response.Success(w, map[string]string{"message": "cart cleared"})
}
