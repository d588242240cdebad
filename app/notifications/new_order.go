// Package notifications defines the storefront's outbound
// notifications: alerts sent to the shop, as opposed to the
// customer-facing mails handled by queued jobs.
package notifications

import (
	"fmt"

	"github.com/pamleeskitchen/bakehouse/app/models"
	"github.com/pamleeskitchen/bakehouse/config"
	"github.com/pamleeskitchen/bakehouse/pkg/notification"
)

// NewOrder alerts the shop about a freshly placed order. It always
// mails the shop inbox and additionally POSTs to the order webhook
// when one is configured.
type NewOrder struct {
	Order models.Order
}

func (n *NewOrder) Via() []string {
	channels := []string{"mail"}
	if config.OrderWebhookURL() != "" {
		channels = append(channels, "webhook")
	}
	return channels
}

func (n *NewOrder) ToMail() notification.MailData {
	return notification.MailData{
		To:      config.ShopEmail(),
		Subject: fmt.Sprintf("New order %s (%s)", n.Order.OrderNumber, n.Order.Total),
		Text: fmt.Sprintf("%s placed a %s order for %s.\nOrder number: %s",
			n.Order.CustomerName, n.Order.DeliveryType, n.Order.Total, n.Order.OrderNumber),
	}
}

func (n *NewOrder) ToWebhook() notification.WebhookData {
	return notification.WebhookData{
		URL: config.OrderWebhookURL(),
		Payload: map[string]interface{}{
			"orderNumber":  n.Order.OrderNumber,
			"customerName": n.Order.CustomerName,
			"deliveryType": n.Order.DeliveryType,
			"total":        n.Order.Total,
			"status":       n.Order.Status,
		},
	}
}
