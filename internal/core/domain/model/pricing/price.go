package pricing

import (
	"errors"
	"strings"
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const AggregateType = "price"

var ErrPriceIsNotConstructed = errors.New("Price must be created via NewPrice constructor")

// Amounts groups the monetary fields of a price.
type Amounts struct {
	ListingPrice         decimal.Decimal
	SellingPrice         decimal.Decimal
	CostPrice            decimal.Decimal
	CommissionPercentage decimal.Decimal
	ShippingFee          decimal.Decimal
}

// Price is the pricing record of one product, identified by its sku.
type Price struct {
	id                   kernel.ID
	sku                  string
	listingPrice         decimal.Decimal
	sellingPrice         decimal.Decimal
	discountPercentage   decimal.Decimal
	costPrice            decimal.Decimal
	commissionPercentage decimal.Decimal
	shippingFee          decimal.Decimal
	lastUpdated          time.Time

	isConstructed bool
}

// NewPrice creates a price and derives its discount from listing and selling price.
func NewPrice(id kernel.ID, sku string, amounts Amounts, now time.Time) (*Price, error) {
	discount := RecomputeDiscount(amounts.ListingPrice, amounts.SellingPrice, decimal.Zero)
	return RestorePrice(id, sku, amounts, discount, now)
}

func RestorePrice(
	id kernel.ID,
	sku string,
	amounts Amounts,
	discountPercentage decimal.Decimal,
	lastUpdated time.Time,
) (*Price, error) {
	p := &Price{
		id:                   id,
		sku:                  strings.TrimSpace(sku),
		listingPrice:         amounts.ListingPrice,
		sellingPrice:         amounts.SellingPrice,
		discountPercentage:   discountPercentage,
		costPrice:            amounts.CostPrice,
		commissionPercentage: amounts.CommissionPercentage,
		shippingFee:          amounts.ShippingFee,
		lastUpdated:          lastUpdated,
		isConstructed:        true,
	}

	var skuErr error
	if p.sku == "" {
		skuErr = errs.NewValueIsRequiredError("sku")
	}
	if err := errors.Join(id.Validate(), skuErr, p.validateAmounts()); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Price) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPriceIsNotConstructed
	}
	return nil
}

func (p *Price) ID() kernel.ID                         { return p.id }
func (p *Price) SKU() string                           { return p.sku }
func (p *Price) ListingPrice() decimal.Decimal         { return p.listingPrice }
func (p *Price) SellingPrice() decimal.Decimal         { return p.sellingPrice }
func (p *Price) DiscountPercentage() decimal.Decimal   { return p.discountPercentage }
func (p *Price) CostPrice() decimal.Decimal            { return p.costPrice }
func (p *Price) CommissionPercentage() decimal.Decimal { return p.commissionPercentage }
func (p *Price) ShippingFee() decimal.Decimal          { return p.shippingFee }
func (p *Price) LastUpdated() time.Time                { return p.lastUpdated }

func (p *Price) AggregateType() string { return AggregateType }

// LifecycleStatus is constant: prices have no status of their own, every write is an update.
func (p *Price) LifecycleStatus() string {
	return "UPDATED"
}

// ProfitMargin applies the calculator to the current fields.
func (p *Price) ProfitMargin() decimal.Decimal {
	return ProfitMargin(p.sellingPrice, p.costPrice, p.commissionPercentage, p.shippingFee)
}

// UpdateSellingPrice sets the selling price and recomputes the discount. The discount is
// left unchanged when the listing price is zero. A selling price whose discount falls
// outside the stored range is rejected and the price is left unchanged.
func (p *Price) UpdateSellingPrice(selling decimal.Decimal, now time.Time) error {
	if err := kernel.ValidateAmount("selling_price", selling); err != nil {
		return err
	}

	discount := RecomputeDiscount(p.listingPrice, selling, p.discountPercentage)
	if err := validateDiscount(discount); err != nil {
		return err
	}

	p.discountPercentage = discount
	p.sellingPrice = selling
	p.lastUpdated = now
	return nil
}

// ApplyPatch writes only the fields present in patch. The discount is not recomputed;
// a direct write may leave it inconsistent with listing and selling price.
// On validation failure the price is left unchanged.
func (p *Price) ApplyPatch(patch PricePatch, now time.Time) error {
	next := *p
	assign := func(dst *decimal.Decimal, src *decimal.Decimal) {
		if src != nil {
			*dst = *src
		}
	}
	assign(&next.listingPrice, patch.ListingPrice)
	assign(&next.sellingPrice, patch.SellingPrice)
	assign(&next.discountPercentage, patch.DiscountPercentage)
	assign(&next.costPrice, patch.CostPrice)
	assign(&next.commissionPercentage, patch.CommissionPercentage)
	assign(&next.shippingFee, patch.ShippingFee)

	if err := next.validateAmounts(); err != nil {
		return err
	}

	next.lastUpdated = now
	*p = next
	return nil
}

func (p *Price) validateAmounts() error {
	return errors.Join(
		kernel.ValidateAmount("listing_price", p.listingPrice),
		kernel.ValidateAmount("selling_price", p.sellingPrice),
		kernel.ValidateAmount("cost_price", p.costPrice),
		kernel.ValidateAmount("shipping_fee", p.shippingFee),
		kernel.ValidatePercentage("commission_percentage", p.commissionPercentage),
		validateDiscount(p.discountPercentage),
	)
}

// maxDiscount bounds the discount magnitude on create, update and restore alike.
var maxDiscount = decimal.NewFromInt(999)

// validateDiscount allows negative discounts, which occur when selling above listing.
func validateDiscount(discount decimal.Decimal) error {
	if discount.Abs().GreaterThan(maxDiscount) {
		return errs.NewValueIsOutOfRangeError("discount_percentage", discount.String(), "-999", "999")
	}
	return nil
}
