package jobs

import (
	"fmt"

	"github.com/pamleeskitchen/bakehouse/app/repositories"
	"github.com/pamleeskitchen/bakehouse/config"
	"github.com/pamleeskitchen/bakehouse/pkg/mail"
	"github.com/pamleeskitchen/bakehouse/pkg/queue"
)

// ContactNotificationJob forwards a contact form submission to the
// shop inbox.
type ContactNotificationJob struct {
	MessageID uint `json:"messageId"`
}

func (j ContactNotificationJob) Handle() error {
	msg, err := repositories.NewContentRepository().FindContactMessage(j.MessageID)
	if err != nil {
		return fmt.Errorf("contact notification: load message %d: %w", j.MessageID, err)
	}

	body := fmt.Sprintf("From: %s <%s>\nPhone: %s\n\n%s",
		msg.Name, msg.Email, msg.Phone, msg.Message)

	subject := fmt.Sprintf("New contact message from %s", msg.Name)
	if msg.Subject != "" {
		subject = fmt.Sprintf("%s (from %s)", msg.Subject, msg.Name)
	}

	err = mail.To(config.ShopEmail()).
		Subject(subject).
		Text(body).
		Send()
	if err != nil {
		return fmt.Errorf("contact notification: send: %w", err)
	}
	return nil
}

// Register wires every job type into the queue registry. Call once at
// boot before workers start. Factories return pointers so payloads can
// be unmarshalled into them.
func Register() {
	queue.Register(fmt.Sprintf("%T", OrderConfirmationJob{}), func() queue.Job { return &OrderConfirmationJob{} })
	queue.Register(fmt.Sprintf("%T", ContactNotificationJob{}), func() queue.Job { return &ContactNotificationJob{} })
}
