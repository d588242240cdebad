package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpecialCurrent(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	tests := []struct {
		name    string
		from    *time.Time
		until   *time.Time
		current bool
	}{
		{"no window", nil, nil, true},
		{"inside window", &yesterday, &tomorrow, true},
		{"not yet valid", &tomorrow, nil, false},
		{"already ended", nil, &yesterday, false},
		{"ends exactly now", nil, &now, false},
		{"starts exactly now", &now, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Special{ValidFrom: tt.from, ValidUntil: tt.until}
			assert.Equal(t, tt.current, s.Current(now))
		})
	}
}
