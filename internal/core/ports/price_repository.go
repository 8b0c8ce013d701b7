package ports

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/pricing"
)

type PriceRepository interface {
	Add(ctx context.Context, aggregate *pricing.Price) error

	Update(ctx context.Context, aggregate *pricing.Price) error

	Get(ctx context.Context, id kernel.ID) (*pricing.Price, error)
}

type PricingRuleRepository interface {
	Add(ctx context.Context, aggregate *pricing.PricingRule) error

	Update(ctx context.Context, aggregate *pricing.PricingRule) error

	Get(ctx context.Context, id kernel.ID) (*pricing.PricingRule, error)
}

type SpecialPriceRepository interface {
	Add(ctx context.Context, aggregate *pricing.SpecialPrice) error

	Update(ctx context.Context, aggregate *pricing.SpecialPrice) error

	Get(ctx context.Context, id kernel.ID) (*pricing.SpecialPrice, error)
}
