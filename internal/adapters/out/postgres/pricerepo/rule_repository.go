package pricerepo

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/pricing"
	"sellerops/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormPricingRuleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormPricingRuleRepository(db *gorm.DB, tracker aggregateTracker) *GormPricingRuleRepository {
	return &GormPricingRuleRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormPricingRuleRepository) Add(ctx context.Context, aggregate *pricing.PricingRule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := ruleFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.FromDatabase(err, "pricing rule", dto.RuleID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists the activation flag only.
func (r *GormPricingRuleRepository) Update(ctx context.Context, aggregate *pricing.PricingRule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := ruleFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PricingRuleDTO{}).Where("rule_id = ?", dto.RuleID).Updates(map[string]any{
		"is_active":  dto.IsActive,
		"updated_at": dto.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("pricing rule", dto.RuleID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPricingRuleRepository) Get(ctx context.Context, id kernel.ID) (*pricing.PricingRule, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PricingRuleDTO
	if err := r.db.WithContext(ctx).First(&dto, "rule_id = ?", id.String()).Error; err != nil {
		return nil, errs.FromDatabase(err, "pricing rule", id.String())
	}
	return ruleToDomain(dto)
}

type GormSpecialPriceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormSpecialPriceRepository(db *gorm.DB, tracker aggregateTracker) *GormSpecialPriceRepository {
	return &GormSpecialPriceRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormSpecialPriceRepository) Add(ctx context.Context, aggregate *pricing.SpecialPrice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := specialPriceFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.FromDatabase(err, "special price", dto.SpecialPriceID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists the activation flag only.
func (r *GormSpecialPriceRepository) Update(ctx context.Context, aggregate *pricing.SpecialPrice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := specialPriceFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&SpecialPriceDTO{}).
		Where("special_price_id = ?", dto.SpecialPriceID).
		Updates(map[string]any{
			"is_active":  dto.IsActive,
			"updated_at": dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("special price", dto.SpecialPriceID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormSpecialPriceRepository) Get(ctx context.Context, id kernel.ID) (*pricing.SpecialPrice, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SpecialPriceDTO
	if err := r.db.WithContext(ctx).First(&dto, "special_price_id = ?", id.String()).Error; err != nil {
		return nil, errs.FromDatabase(err, "special price", id.String())
	}
	return specialPriceToDomain(dto)
}
