package commands

import (
	"sellerops/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
)

// PriceResult is the state of a price after a write, with the margin it yields.
type PriceResult struct {
	PriceID            string
	SKU                string
	ListingPrice       decimal.Decimal
	SellingPrice       decimal.Decimal
	DiscountPercentage decimal.Decimal
	ProfitMargin       decimal.Decimal
}

func newPriceResult(p *pricing.Price) PriceResult {
	return PriceResult{
		PriceID:            p.ID().String(),
		SKU:                p.SKU(),
		ListingPrice:       p.ListingPrice(),
		SellingPrice:       p.SellingPrice(),
		DiscountPercentage: p.DiscountPercentage(),
		ProfitMargin:       p.ProfitMargin(),
	}
}
