package pricing

import (
	"sellerops/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// discountScale is the number of decimal places kept for discount percentages.
const discountScale = 2

// RecomputeDiscount returns the discount percentage of newSelling against listing.
// When listing is not positive the current discount is returned unchanged.
func RecomputeDiscount(listing, newSelling, current decimal.Decimal) decimal.Decimal {
	if !listing.IsPositive() {
		return current
	}
	return listing.Sub(newSelling).
		Mul(kernel.Hundred()).
		DivRound(listing, discountScale)
}

// ProfitMargin returns selling - cost - commission - shippingFee, where the commission is
// commissionPct percent of the selling price.
func ProfitMargin(selling, cost, commissionPct, shippingFee decimal.Decimal) decimal.Decimal {
	commission := selling.Mul(commissionPct).Div(kernel.Hundred())
	return selling.Sub(cost).Sub(commission).Sub(shippingFee)
}
