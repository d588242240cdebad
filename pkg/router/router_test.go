package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pamleeskitchen/bakehouse/pkg/router"
)

func TestNamedRoutesAndParams(t *testing.T) {
	r := router.New()
	r.Get("/products/{id}", "products.show", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("product " + router.Param(req, "id")))
	})

	path, ok := r.Path("products.show")
	require.True(t, ok)
	assert.Equal(t, "/products/{id}", path)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/7", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "product 7", rec.Body.String())
}

func TestGroupPrefixAndMiddleware(t *testing.T) {
	var order []string
	tag := func(name string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, req)
			})
		}
	}

	r := router.New()
	api := r.Group("/api", tag("group"))
	api.Get("/ping", "ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}, tag("route"))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"group", "route"}, order)
}

func TestNestedGroupInheritsPrefix(t *testing.T) {
	r := router.New()
	admin := r.Group("/api").Group("/admin")
	admin.Get("/orders", "admin.orders", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	routes := r.Routes()
	require.Len(t, routes, 1)
	assert.Equal(t, "/api/admin/orders", routes[0].Path)
	assert.Equal(t, "admin.orders", routes[0].Name)
}

func TestUnknownRouteName(t *testing.T) {
	r := router.New()
	_, ok := r.Path("nope")
	assert.False(t, ok)
}
