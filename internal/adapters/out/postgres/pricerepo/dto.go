package pricerepo

import (
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
)

// PriceDTO is a row of the prices table. sku is unique across prices.
type PriceDTO struct {
	PriceID              string          `gorm:"column:price_id;primaryKey;size:100"`
	SKU                  string          `gorm:"column:sku;size:100;uniqueIndex;not null"`
	ListingPrice         decimal.Decimal `gorm:"column:listing_price;type:numeric(12,2);not null"`
	SellingPrice         decimal.Decimal `gorm:"column:selling_price;type:numeric(12,2);not null"`
	DiscountPercentage   decimal.Decimal `gorm:"column:discount_percentage;type:numeric(7,2);not null"`
	CostPrice            decimal.Decimal `gorm:"column:cost_price;type:numeric(12,2);not null"`
	CommissionPercentage decimal.Decimal `gorm:"column:commission_percentage;type:numeric(5,2);not null"`
	ShippingFee          decimal.Decimal `gorm:"column:shipping_fee;type:numeric(12,2);not null"`
	LastUpdated          time.Time       `gorm:"column:last_updated;not null"`
}

func (PriceDTO) TableName() string {
	return "prices"
}

func Models() []any {
	return []any{&PriceDTO{}, &PricingRuleDTO{}, &SpecialPriceDTO{}}
}

func fromDomain(p *pricing.Price) PriceDTO {
	return PriceDTO{
		PriceID:              p.ID().String(),
		SKU:                  p.SKU(),
		ListingPrice:         p.ListingPrice(),
		SellingPrice:         p.SellingPrice(),
		DiscountPercentage:   p.DiscountPercentage(),
		CostPrice:            p.CostPrice(),
		CommissionPercentage: p.CommissionPercentage(),
		ShippingFee:          p.ShippingFee(),
		LastUpdated:          p.LastUpdated(),
	}
}

func toDomain(dto PriceDTO) (*pricing.Price, error) {
	id, err := kernel.NewID(dto.PriceID)
	if err != nil {
		return nil, err
	}

	return pricing.RestorePrice(id, dto.SKU, pricing.Amounts{
		ListingPrice:         dto.ListingPrice,
		SellingPrice:         dto.SellingPrice,
		CostPrice:            dto.CostPrice,
		CommissionPercentage: dto.CommissionPercentage,
		ShippingFee:          dto.ShippingFee,
	}, dto.DiscountPercentage, dto.LastUpdated)
}
