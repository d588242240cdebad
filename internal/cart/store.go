package cart

import (
	"net/http"
	"strconv"

	"github.com/pamleeskitchen/bakehouse/pkg/session"
)

const sessionKey = "cart"

// FromSession loads the visitor's cart out of their session. A missing or
// malformed entry yields an empty cart.
func FromSession(r *http.Request) *Cart {
	sess := session.FromCtx(r)

	raw, ok := sess.Get(sessionKey)
	if !ok {
		return New()
	}

	// Session data round-trips through JSON, so the map comes back as
	// map[string]interface{} with float64 values.
	m, ok := raw.(map[string]interface{})
	if !ok {
		return New()
	}

	items := make(map[uint]int, len(m))
	for k, v := range m {
		id, err := strconv.ParseUint(k, 10, 64)
		qty, okQty := v.(float64)
		if err != nil || id == 0 || !okQty {
			continue
		}
		items[uint(id)] = int(qty)
	}
	return FromItems(items)
}

// Save writes the cart back into the session and persists it.
func Save(w http.ResponseWriter, r *http.Request, c *Cart) error {
	sess := session.FromCtx(r)

	m := make(map[string]int, c.Len())
	for id, qty := range c.items {
		m[strconv.FormatUint(uint64(id), 10)] = qty
	}
	sess.Set(sessionKey, m)
	return sess.Save(w)
}
