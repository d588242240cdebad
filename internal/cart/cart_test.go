package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetItem(t *testing.T) {
	c := New()

	require.NoError(t, c.SetItem(1, 2))
	require.NoError(t, c.SetItem(2, 1))
	assert.Equal(t, map[uint]int{1: 2, 2: 1}, c.Items())

	// Updating an existing line replaces the quantity.
	require.NoError(t, c.SetItem(1, 5))
	assert.Equal(t, 5, c.Quantity(1))

	// Zero removes the entry entirely.
	require.NoError(t, c.SetItem(1, 0))
	assert.Equal(t, 0, c.Quantity(1))
	assert.Equal(t, 1, c.Len())

	// Negative behaves like zero.
	require.NoError(t, c.SetItem(2, -3))
	assert.True(t, c.IsEmpty())
}

func TestSetItemQuantityCap(t *testing.T) {
	c := New()

	require.NoError(t, c.SetItem(1, MaxQuantity))

	err := c.SetItem(1, MaxQuantity+1)
	assert.ErrorIs(t, err, ErrQuantityTooLarge)
	// Failed set leaves the previous quantity untouched.
	assert.Equal(t, MaxQuantity, c.Quantity(1))
}

func TestAdd(t *testing.T) {
	c := New()

	require.NoError(t, c.Add(7, 2))
	require.NoError(t, c.Add(7, 3))
	assert.Equal(t, 5, c.Quantity(7))

	// Decrementing below one removes the line.
	require.NoError(t, c.Add(7, -5))
	assert.True(t, c.IsEmpty())
}

func TestItemCount(t *testing.T) {
	c := New()
	assert.Equal(t, 0, c.ItemCount())

	require.NoError(t, c.SetItem(1, 2))
	require.NoError(t, c.SetItem(2, 1))
	require.NoError(t, c.SetItem(3, 4))
	assert.Equal(t, 7, c.ItemCount())

	require.NoError(t, c.SetItem(3, 0))
	assert.Equal(t, 3, c.ItemCount())
}

func TestLinesSorted(t *testing.T) {
	c := FromItems(map[uint]int{9: 1, 2: 4, 5: 2})

	lines := c.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, []Line{{2, 4}, {5, 2}, {9, 1}}, lines)
}

func TestFromItemsDropsNonPositive(t *testing.T) {
	c := FromItems(map[uint]int{1: 2, 2: 0, 3: -1})
	assert.Equal(t, map[uint]int{1: 2}, c.Items())
}

func TestClear(t *testing.T) {
	c := FromItems(map[uint]int{1: 2, 2: 1})
	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.Lines())
}
