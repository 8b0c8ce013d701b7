package kernel_test

import (
	"testing"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  decimal.Decimal
		wantErr bool
	}{
		{name: "zero", amount: decimal.Zero},
		{name: "positive", amount: decimal.RequireFromString("5000.50")},
		{name: "max", amount: kernel.MaxAmount},
		{name: "negative", amount: decimal.NewFromInt(-1), wantErr: true},
		{name: "above max", amount: kernel.MaxAmount.Add(decimal.NewFromInt(1)), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := kernel.ValidateAmount("refund_amount", tt.amount)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				assert.Contains(t, err.Error(), "refund_amount")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidatePercentage(t *testing.T) {
	assert.NoError(t, kernel.ValidatePercentage("commission_percentage", decimal.Zero))
	assert.NoError(t, kernel.ValidatePercentage("commission_percentage", decimal.NewFromInt(100)))
	assert.ErrorIs(t, kernel.ValidatePercentage("commission_percentage", decimal.NewFromInt(150)), errs.ErrValueIsOutOfRange)
	assert.ErrorIs(t, kernel.ValidatePercentage("commission_percentage", decimal.NewFromInt(-5)), errs.ErrValueIsOutOfRange)
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, "10.13", kernel.RoundMoney(decimal.RequireFromString("10.125")).String())
}
