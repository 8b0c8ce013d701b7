package kernel

import (
	"sellerops/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	// MaxAmount mirrors the numeric(12,2) money columns.
	MaxAmount = decimal.RequireFromString("9999999999.99")
)

// Hundred returns the decimal constant 100.
func Hundred() decimal.Decimal {
	return hundred
}

// ValidateAmount checks that a monetary value is within [0, MaxAmount].
func ValidateAmount(paramName string, amount decimal.Decimal) error {
	if amount.IsNegative() || amount.GreaterThan(MaxAmount) {
		return errs.NewValueIsOutOfRangeError(paramName, amount.String(), "0", MaxAmount.String())
	}
	return nil
}

// ValidatePercentage checks that a percentage is within [0, 100].
func ValidatePercentage(paramName string, pct decimal.Decimal) error {
	if pct.IsNegative() || pct.GreaterThan(hundred) {
		return errs.NewValueIsOutOfRangeError(paramName, pct.String(), "0", "100")
	}
	return nil
}

// RoundMoney rounds to two decimal places, the scale of every stored amount.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}
