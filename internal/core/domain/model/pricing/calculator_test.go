package pricing_test

import (
	"testing"

	"sellerops/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRecomputeDiscount(t *testing.T) {
	tests := []struct {
		name     string
		listing  string
		selling  string
		current  string
		expected string
	}{
		{name: "ten percent off", listing: "1000", selling: "900", current: "0", expected: "10"},
		{name: "no discount", listing: "500", selling: "500", current: "3", expected: "0"},
		{name: "selling above listing", listing: "100", selling: "120", current: "0", expected: "-20"},
		{name: "fractional result rounded", listing: "300", selling: "200", current: "0", expected: "33.33"},
		{name: "zero listing keeps current", listing: "0", selling: "450", current: "12.5", expected: "12.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.RecomputeDiscount(d(tt.listing), d(tt.selling), d(tt.current))

			assert.True(t, d(tt.expected).Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestProfitMargin(t *testing.T) {
	t.Run("documented example", func(t *testing.T) {
		got := pricing.ProfitMargin(d("900"), d("600"), d("15"), d("50"))

		assert.True(t, d("115").Equal(got), "got %s", got)
	})

	t.Run("may be negative", func(t *testing.T) {
		got := pricing.ProfitMargin(d("100"), d("150"), d("10"), d("20"))

		assert.True(t, d("-80").Equal(got), "got %s", got)
	})

	t.Run("keeps fractional commission", func(t *testing.T) {
		got := pricing.ProfitMargin(d("199.99"), d("100"), d("12.5"), d("0"))

		assert.True(t, d("74.991250").Equal(got), "got %s", got)
	})
}
