package pricing

import "github.com/shopspring/decimal"

// PricePatch carries the fields of a partial price update. Nil fields are left as they are.
type PricePatch struct {
	ListingPrice         *decimal.Decimal
	SellingPrice         *decimal.Decimal
	DiscountPercentage   *decimal.Decimal
	CostPrice            *decimal.Decimal
	CommissionPercentage *decimal.Decimal
	ShippingFee          *decimal.Decimal
}

// IsEmpty reports whether the patch changes nothing.
func (p PricePatch) IsEmpty() bool {
	return p.ListingPrice == nil &&
		p.SellingPrice == nil &&
		p.DiscountPercentage == nil &&
		p.CostPrice == nil &&
		p.CommissionPercentage == nil &&
		p.ShippingFee == nil
}
