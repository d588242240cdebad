// Package money wraps shopspring decimal for currency amounts. Amounts
// are persisted as decimal(10,2) and rendered as strings with exactly two
// decimal places, never as floats.
package money

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a currency value with two-decimal display semantics.
type Amount struct {
	d decimal.Decimal
}

// Zero is the zero amount.
var Zero = Amount{}

// New builds an Amount from a decimal.
func New(d decimal.Decimal) Amount {
	return Amount{d: d}
}

// FromString parses a decimal string such as "450.00".
func FromString(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, fmt.Errorf("money: parse %q: %w", s, err)
	}
	return Amount{d: d}, nil
}

// MustFromString is FromString for trusted literals; panics on bad input.
func MustFromString(s string) Amount {
	a, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal { return a.d }

// Add returns a + b.
func (a Amount) Add(b Amount) Amount { return Amount{d: a.d.Add(b.d)} }

// Sub returns a - b.
func (a Amount) Sub(b Amount) Amount { return Amount{d: a.d.Sub(b.d)} }

// MulInt returns a multiplied by a whole quantity.
func (a Amount) MulInt(n int) Amount {
	return Amount{d: a.d.Mul(decimal.NewFromInt(int64(n)))}
}

// IsZero reports whether the amount is exactly zero.
func (a Amount) IsZero() bool { return a.d.IsZero() }

// IsNegative reports whether the amount is below zero.
func (a Amount) IsNegative() bool { return a.d.IsNegative() }

// Equal reports numeric equality (450.0 == 450.00).
func (a Amount) Equal(b Amount) bool { return a.d.Equal(b.d) }

// Cmp returns -1, 0 or 1 comparing a to b.
func (a Amount) Cmp(b Amount) int { return a.d.Cmp(b.d) }

// String renders the amount with exactly two decimal places.
func (a Amount) String() string { return a.d.StringFixed(2) }

// MarshalJSON renders the amount as a quoted two-decimal string, e.g.
// "925.00".
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.d.StringFixed(2) + `"`), nil
}

// UnmarshalJSON accepts both "450.00" and bare 450 for compatibility with
// older clients.
func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("money: unmarshal %q: %w", s, err)
	}
	a.d = d
	return nil
}

// Value implements driver.Valuer so gorm stores the two-decimal string.
func (a Amount) Value() (driver.Value, error) {
	return a.d.StringFixed(2), nil
}

// Scan implements sql.Scanner.
func (a *Amount) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		a.d = decimal.Zero
		return nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("money: scan %q: %w", v, err)
		}
		a.d = d
		return nil
	case []byte:
		return a.Scan(string(v))
	case float64:
		a.d = decimal.NewFromFloat(v)
		return nil
	case int64:
		a.d = decimal.NewFromInt(v)
		return nil
	default:
		return fmt.Errorf("money: cannot scan %T", src)
	}
}

// GormDataType tells gorm the column type for Amount fields.
func (Amount) GormDataType() string { return "decimal(10,2)" }
