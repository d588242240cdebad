// Package jobs defines the background jobs the storefront dispatches.
// Every job type must be registered at boot so queue workers can
// deserialize it; see Register.
package jobs

import (
	"fmt"
	"strings"

	"github.com/pamleeskitchen/bakehouse/app/models"
	"github.com/pamleeskitchen/bakehouse/app/repositories"
	"github.com/pamleeskitchen/bakehouse/config"
	"github.com/pamleeskitchen/bakehouse/pkg/logger"
	"github.com/pamleeskitchen/bakehouse/pkg/mail"
)

// OrderConfirmationJob emails the customer after they place an order.
type OrderConfirmationJob struct {
	OrderID uint `json:"orderId"`
}

func (j OrderConfirmationJob) Handle() error {
	order, err := repositories.NewOrderRepository().FindByID(j.OrderID)
	if err != nil {
		return fmt.Errorf("order confirmation: load order %d: %w", j.OrderID, err)
	}

	err = mail.To(order.CustomerEmail).
		Subject(fmt.Sprintf("%s received your order %s", config.ShopName(), order.OrderNumber)).
		Text(confirmationText(order)).
		Send()
	if err != nil {
		return fmt.Errorf("order confirmation: send %s: %w", order.OrderNumber, err)
	}

	logger.Info("order confirmation sent",
		"order_number", order.OrderNumber,
		"email", order.CustomerEmail,
	)
	return nil
}

func confirmationText(order models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", order.CustomerName)
	fmt.Fprintf(&b, "Thanks for your order! Your order number is %s.\n\n", order.OrderNumber)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "  %d x %s  %s\n", item.Quantity, item.ProductName, item.LineTotal)
	}
	fmt.Fprintf(&b, "\nSubtotal: %s\n", order.Subtotal)
	if !order.DeliveryFee.IsZero() {
		fmt.Fprintf(&b, "Delivery: %s\n", order.DeliveryFee)
	}
	fmt.Fprintf(&b, "Total: %s\n", order.Total)
	fmt.Fprintf(&b, "Payment: %s\n\n", order.PaymentMethod)
	if order.DeliveryType == "delivery" {
		fmt.Fprintf(&b, "We will deliver to: %s\n", order.Address)
	} else {
		b.WriteString("Your order will be ready for pickup.\n")
	}
	fmt.Fprintf(&b, "\nTrack your order any time with its order number.\n\n%s\n", config.ShopName())
	return b.String()
}
