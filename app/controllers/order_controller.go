package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/pamleeskitchen/bakehouse/app/models"
	"github.com/pamleeskitchen/bakehouse/app/services"
	"github.com/pamleeskitchen/bakehouse/internal/cart"
	"github.com/pamleeskitchen/bakehouse/internal/pricing"
	"github.com/pamleeskitchen/bakehouse/pkg/bind"
	"github.com/pamleeskitchen/bakehouse/pkg/middleware"
	"github.com/pamleeskitchen/bakehouse/pkg/response"
	"github.com/pamleeskitchen/bakehouse/pkg/router"
	"github.com/pamleeskitchen/bakehouse/pkg/sse"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController() *OrderController {
	return &OrderController{service: services.NewOrderService()}
}

// orderItemForm entries are checked by hand in Create; the validator
// only walks top-level fields.
type orderItemForm struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

type checkoutForm struct {
	CustomerName  string          `json:"customerName" validate:"required,min=2,max=255"`
	CustomerEmail string          `json:"customerEmail" validate:"required,email"`
	CustomerPhone string          `json:"customerPhone" validate:"nullable,max=50"`
	DeliveryType  string          `json:"deliveryType" validate:"required,in=delivery,pickup"`
	PaymentMethod string          `json:"paymentMethod" validate:"required,in=cash,card,eft"`
	Address       string          `json:"address" validate:"nullable,max=1000"`
	Notes         string          `json:"notes" validate:"nullable,max=1000"`
	Items         []orderItemForm `json:"items" validate:"nullable"`
}

// Create places an order. The request may carry explicit line items;
// when it does not, the session cart is used. The cart is cleared once
// the order is placed.
func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	var form checkoutForm
	fails, err := bind.JSONValidated(w, r, &form)
	if err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if form.DeliveryType == string(pricing.Delivery) && form.Address == "" {
		fails["address"] = "The address field is required for delivery orders."
	}
	if len(fails) > 0 {
		response.ValidationError(w, fails)
		return
	}

	ct := cart.FromSession(r)
	if len(form.Items) > 0 {
		ct = cart.New()
		for _, item := range form.Items {
			if item.ProductID == 0 || item.Quantity < 1 {
				response.ValidationError(w, map[string]string{"items": "Each item needs a productId and a positive quantity."})
				return
			}
			if err := ct.Add(item.ProductID, item.Quantity); err != nil {
				response.ValidationError(w, map[string]string{"items": err.Error()})
				return
			}
		}
	}

	in := services.CheckoutInput{
		CustomerName:  form.CustomerName,
		CustomerEmail: form.CustomerEmail,
		CustomerPhone: form.CustomerPhone,
		DeliveryType:  pricing.DeliveryType(form.DeliveryType),
		PaymentMethod: form.PaymentMethod,
		Address:       form.Address,
		Notes:         form.Notes,
		Cart:          ct,
	}
	if claims, ok := middleware.ClaimsFromCtx(r.Context()); ok {
		in.UserID = &claims.UserID
	}

	order, err := c.service.Create(in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyOrder):
			response.BadRequest(w, "your cart is empty")
		case errors.Is(err, services.ErrProductUnavailable):
			response.ValidationError(w, map[string]string{"items": err.Error()})
		default:
			response.ServerError(w, "could not place order")
		}
		return
	}

	// Order exists; a stale cart is an annoyance, not a failure.
	_ = cart.Save(w, r, cart.New())
	response.Created(w, order)
}

// Quote prices the session cart for the checkout page.
func (c *OrderController) Quote(w http.ResponseWriter, r *http.Request) {
	deliveryType := pricing.DeliveryType(r.URL.Query().Get("deliveryType"))
	if !deliveryType.Valid() {
		response.BadRequest(w, "deliveryType must be delivery or pickup")
		return
	}

	quote, err := c.service.Quote(cart.FromSession(r), deliveryType)
	if err != nil {
		response.ServerError(w, "could not price cart")
		return
	}
	response.Success(w, quote)
}

// Track returns an order by its public order number.
func (c *OrderController) Track(w http.ResponseWriter, r *http.Request) {
	order, err := c.service.Track(router.Param(r, "orderNumber"))
	if err != nil {
		response.NotFound(w, "order not found")
		return
	}
	response.Success(w, order)
}

// Cancel lets a customer cancel a pending order inside the window.
func (c *OrderController) Cancel(w http.ResponseWriter, r *http.Request) {
	id, parseErr := paramID(r, "id")
	if parseErr != nil {
		response.BadRequest(w, "invalid order id")
		return
	}

	order, err := c.service.CancelByID(id)
	switch {
	case err == nil:
		response.Success(w, order)
	case errors.Is(err, services.ErrOrderNotFound):
		response.NotFound(w, "order not found")
	case errors.Is(err, services.ErrCancelNotPending),
		errors.Is(err, services.ErrCancelWindowClosed):
		response.Error(w, http.StatusConflict, err.Error())
	default:
		response.ServerError(w, "could not cancel order")
	}
}

// History lists the authenticated customer's past orders.
func (c *OrderController) History(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	orders, err := c.service.History(claims.Email)
	if err != nil {
		response.ServerError(w, "could not load orders")
		return
	}
	response.Success(w, orders)
}

// Stream pushes live status updates for one order over SSE until the
// order reaches a terminal state or the client disconnects.
func (c *OrderController) Stream(w http.ResponseWriter, r *http.Request) {
	order, err := c.service.Track(router.Param(r, "orderNumber"))
	if err != nil {
		response.NotFound(w, "order not found")
		return
	}

	stream := sse.New(w, r)
	if stream == nil {
		return
	}

	send := func(o models.Order) {
		_ = stream.Send("status", map[string]interface{}{
			"orderNumber": o.OrderNumber,
			"status":      o.Status,
			"updatedAt":   o.UpdatedAt,
		})
	}

	send(order)
	last := order.Status

	ticker := time.NewTicker(3 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			current, err := c.service.Track(order.OrderNumber)
			if err != nil {
				return
			}
			if current.Status != last {
				last = current.Status
				send(current)
			}
			if current.Status.Terminal() {
				return
			}
			stream.Comment("keepalive")
		}
	}
}
