package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebtOwed(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  int64
		rate     int64
		expected int64
	}{
		{"two full minutes plus five seconds", 125, 10, 20},
		{"just under one minute", 59, 10, 0},
		{"exactly one minute", 60, 10, 10},
		{"one second past a minute", 61, 10, 10},
		{"zero elapsed", 0, 10, 0},
		{"zero rate", 3600, 0, 0},
		{"one hour", 3600, 5, 300},
		{"large values", 86400, 100, 144000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DebtOwed(tt.elapsed, tt.rate))
		})
	}
}
