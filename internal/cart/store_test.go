package cart

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pamleeskitchen/bakehouse/pkg/cache"
	"github.com/pamleeskitchen/bakehouse/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCartSurvivesReload runs the full session round trip without Redis:
// the cache's in-process store must keep the cart between requests, so
// the session cookie issued by the first response loads the same items
// on the next one.
func TestCartSurvivesReload(t *testing.T) {
	cache.RDB = nil
	mw := session.Middleware(session.DefaultOptions())

	add := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := FromSession(r)
		require.NoError(t, c.SetItem(1, 2))
		require.NoError(t, Save(w, r, c))
	}))

	rec := httptest.NewRecorder()
	add.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/cart/items", nil))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies, "saving the cart should issue a session cookie")

	var got map[uint]int
	read := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = FromSession(r).Items()
	}))

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	read.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, map[uint]int{1: 2}, got, "cart should survive the reload")
}
