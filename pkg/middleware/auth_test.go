package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pamleeskitchen/bakehouse/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalAuthInjectsClaims(t *testing.T) {
	token, err := auth.GenerateToken(7, "pam@example.com", false)
	require.NoError(t, err)

	var got *auth.Claims
	var ok bool
	h := OptionalAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = ClaimsFromCtx(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ok)
	assert.Equal(t, uint(7), got.UserID)
	assert.Equal(t, "pam@example.com", got.Email)
}

func TestOptionalAuthPassesGuestsThrough(t *testing.T) {
	var ok bool
	h := OptionalAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok = ClaimsFromCtx(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, ok)
}

func TestOptionalAuthIgnoresInvalidToken(t *testing.T) {
	var ok bool
	h := OptionalAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok = ClaimsFromCtx(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "not-a-jwt"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, ok)
}
