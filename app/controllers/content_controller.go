package controllers

import (
	"net/http"

	"github.com/pamleeskitchen/bakehouse/app/models"
	"github.com/pamleeskitchen/bakehouse/app/services"
	"github.com/pamleeskitchen/bakehouse/pkg/bind"
	"github.com/pamleeskitchen/bakehouse/pkg/response"
)

// ContentController serves the public homepage extras.
type ContentController struct {
	service *services.ContentService
}

func NewContentController() *ContentController {
	return &ContentController{service: services.NewContentService()}
}

// Specials lists the currently active specials.
func (c *ContentController) Specials(w http.ResponseWriter, r *http.Request) {
	specials, err := c.service.ActiveSpecials()
	if err != nil {
		response.ServerError(w, "could not load specials")
		return
	}
	response.Success(w, specials)
}

// Gallery lists the gallery images in display order.
func (c *ContentController) Gallery(w http.ResponseWriter, r *http.Request) {
	images, err := c.service.Gallery()
	if err != nil {
		response.ServerError(w, "could not load gallery")
		return
	}
	response.Success(w, images)
}

type contactForm struct {
	Name    string `json:"name" validate:"required,min=2,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"nullable,max=50"`
	Subject string `json:"subject" validate:"nullable,max=255"`
	Message string `json:"message" validate:"required,min=5,max=2000"`
}

// Contact accepts a contact form submission.
func (c *ContentController) Contact(w http.ResponseWriter, r *http.Request) {
	var form contactForm
	if fails, err := bind.JSONValidated(w, r, &form); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	} else if len(fails) > 0 {
		response.ValidationError(w, fails)
		return
	}

	msg := models.ContactMessage{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Subject: form.Subject,
		Message: form.Message,
	}
	if err := c.service.SubmitContactMessage(&msg); err != nil {
		response.ServerError(w, "could not send message")
		return
	}
	response.Created(w, map[string]string{"message": "thanks, we will get back to you soon"})
}
