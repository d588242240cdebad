package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackStoreRoundTrip(t *testing.T) {
	RDB = nil

	require.NoError(t, Set("counts", map[string]int{"a": 1}, time.Minute))

	var got map[string]int
	assert.True(t, Get("counts", &got))
	assert.Equal(t, map[string]int{"a": 1}, got)

	require.NoError(t, Del("counts"))
	assert.False(t, Get("counts", &got))
}

func TestFallbackStoreExpiry(t *testing.T) {
	s := newMemoryStore()

	s.entries["stale"] = memoryEntry{data: []byte(`1`), expiresAt: time.Now().Add(-time.Second)}
	_, ok := s.get("stale")
	assert.False(t, ok)

	// Expired entries are dropped on read.
	_, present := s.entries["stale"]
	assert.False(t, present)

	// Zero TTL means no expiry.
	s.set("keep", []byte(`2`), 0)
	data, ok := s.get("keep")
	require.True(t, ok)
	assert.Equal(t, []byte(`2`), data)
}
