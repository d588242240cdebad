package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/pamleeskitchen/bakehouse/app/services"
	"github.com/pamleeskitchen/bakehouse/pkg/auth"
	"github.com/pamleeskitchen/bakehouse/pkg/bind"
	"github.com/pamleeskitchen/bakehouse/pkg/middleware"
	"github.com/pamleeskitchen/bakehouse/pkg/response"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{service: services.NewAuthService()}
}

type registerForm struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Phone    string `json:"phone" validate:"nullable,max=50"`
}

type loginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register creates a customer account and signs them in.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var form registerForm
	if fails, err := bind.JSONValidated(w, r, &form); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	} else if len(fails) > 0 {
		response.ValidationError(w, fails)
		return
	}

	user, token, err := c.service.Register(form.Name, form.Email, form.Password, form.Phone)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			response.ValidationError(w, map[string]string{"email": services.ErrEmailTaken.Error()})
			return
		}
		response.ServerError(w, "could not create account")
		return
	}

	setTokenCookie(w, token)
	response.Created(w, map[string]interface{}{"user": user, "token": token})
}

// Login verifies credentials and sets the auth cookie.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var form loginForm
	if fails, err := bind.JSONValidated(w, r, &form); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	} else if len(fails) > 0 {
		response.ValidationError(w, fails)
		return
	}

	user, token, err := c.service.Login(form.Email, form.Password)
	if err != nil {
		response.Unauthorized(w, "Invalid email or password")
		return
	}

	setTokenCookie(w, token)
	response.Success(w, map[string]interface{}{"user": user, "token": token})
}

// Logout clears the auth cookie.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	response.Success(w, map[string]string{"message": "logged out"})
}

// Me returns the authenticated user's profile.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	user, err := c.service.Profile(claims.UserID)
	if err != nil {
		response.NotFound(w, "account not found")
		return
	}
	response.Success(w, user)
}

func setTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(auth.TokenTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
