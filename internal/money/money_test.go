package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"two decimals", "450.00", "450.00", false},
		{"whole number", "25", "25.00", false},
		{"one decimal", "55.5", "55.50", false},
		{"zero", "0", "0.00", false},
		{"garbage", "abc", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := FromString(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestArithmetic(t *testing.T) {
	cake := MustFromString("450.00")
	croissant := MustFromString("25.00")

	subtotal := cake.MulInt(2).Add(croissant)
	assert.Equal(t, "925.00", subtotal.String())

	total := subtotal.Add(MustFromString("50.00"))
	assert.Equal(t, "975.00", total.String())

	assert.True(t, total.Sub(total).IsZero())
	assert.True(t, Zero.Sub(croissant).IsNegative())
}

func TestJSONRoundTrip(t *testing.T) {
	a := MustFromString("450.00")

	raw, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Equal(t, `"450.00"`, string(raw))

	var back Amount
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, a.Equal(back))

	// Bare numbers from older clients are still accepted.
	var fromNumber Amount
	require.NoError(t, json.Unmarshal([]byte(`450`), &fromNumber))
	assert.True(t, a.Equal(fromNumber))
}

func TestScanValue(t *testing.T) {
	var a Amount
	require.NoError(t, a.Scan("55.00"))
	assert.Equal(t, "55.00", a.String())

	v, err := a.Value()
	require.NoError(t, err)
	assert.Equal(t, "55.00", v)

	require.NoError(t, a.Scan([]byte("25.5")))
	assert.Equal(t, "25.50", a.String())

	require.NoError(t, a.Scan(nil))
	assert.True(t, a.IsZero())

	assert.Error(t, a.Scan(struct{}{}))
}
