package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount   float64
		currency string
		want     string
	}{
		{0, "USD", "0.00 USD"},
		{3.5, "USD", "3.50 USD"},
		{1234.5, "USD", "1,234.50 USD"},
		{1000000, "", "1,000,000.00"},
		{-800, "EUR", "-800.00 EUR"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.amount, tt.currency))
		})
	}
}

func TestFormatSigned(t *testing.T) {
	assert.Equal(t, "+ 2,000.00 USD", FormatSigned(2000, true, "USD"))
	assert.Equal(t, "- 12.00 USD", FormatSigned(12, false, "USD"))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "33.3%", FormatPercent(100.0/3))
}
