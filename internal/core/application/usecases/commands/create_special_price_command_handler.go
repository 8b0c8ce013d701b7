package commands

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/pricing"
)

type CreateSpecialPriceCommandHandler struct {
	uowFactory PricingUoWFactory
	clock      kernel.Clock
}

func NewCreateSpecialPriceCommandHandler(
	uowFactory PricingUoWFactory,
	clock kernel.Clock,
) CreateSpecialPriceCommandHandler {
	return CreateSpecialPriceCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h CreateSpecialPriceCommandHandler) Handle(
	ctx context.Context,
	cmd CreateSpecialPriceCommand,
) (RecordResult, error) {
	if err := cmd.Validate(); err != nil {
		return RecordResult{}, err
	}

	special, err := pricing.NewSpecialPrice(
		cmd.SpecialPriceID(),
		cmd.SKU(),
		cmd.Price(),
		cmd.PromotionName(),
		cmd.Period(),
		h.clock.Now(),
	)
	if err != nil {
		return RecordResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return RecordResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.SpecialPriceRepository().Add(ctx, special); err != nil {
		return RecordResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RecordResult{}, err
	}

	return RecordResult{
		ID:       special.ID().String(),
		Status:   special.LifecycleStatus(),
		IsActive: special.IsActive(),
	}, nil
}
