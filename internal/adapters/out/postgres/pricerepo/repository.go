// Package pricerepo stores product prices.
package pricerepo

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/pricing"
	"sellerops/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormPriceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate kernel.Aggregate)
}

func NewGormPriceRepository(db *gorm.DB, tracker aggregateTracker) *GormPriceRepository {
	return &GormPriceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the price. Both a reused price id and a reused sku yield
// ObjectAlreadyExistsError.
func (r *GormPriceRepository) Add(ctx context.Context, aggregate *pricing.Price) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.FromDatabase(err, "price", dto.PriceID+" (sku "+dto.SKU+")")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites every amount column; sku and price_id never change.
func (r *GormPriceRepository) Update(ctx context.Context, aggregate *pricing.Price) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PriceDTO{}).Where("price_id = ?", dto.PriceID).Updates(map[string]any{
		"listing_price":         dto.ListingPrice,
		"selling_price":         dto.SellingPrice,
		"discount_percentage":   dto.DiscountPercentage,
		"cost_price":            dto.CostPrice,
		"commission_percentage": dto.CommissionPercentage,
		"shipping_fee":          dto.ShippingFee,
		"last_updated":          dto.LastUpdated,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("price", dto.PriceID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPriceRepository) Get(ctx context.Context, id kernel.ID) (*pricing.Price, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PriceDTO
	if err := r.db.WithContext(ctx).First(&dto, "price_id = ?", id.String()).Error; err != nil {
		return nil, errs.FromDatabase(err, "price", id.String())
	}
	return toDomain(dto)
}
