package commands

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/pricing"
)

type CreatePriceCommandHandler struct {
	uowFactory PricingUoWFactory
	clock      kernel.Clock
}

func NewCreatePriceCommandHandler(uowFactory PricingUoWFactory, clock kernel.Clock) CreatePriceCommandHandler {
	return CreatePriceCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h CreatePriceCommandHandler) Handle(ctx context.Context, cmd CreatePriceCommand) (PriceResult, error) {
	if err := cmd.Validate(); err != nil {
		return PriceResult{}, err
	}

	price, err := pricing.NewPrice(cmd.PriceID(), cmd.SKU(), cmd.Amounts(), h.clock.Now())
	if err != nil {
		return PriceResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return PriceResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PriceRepository().Add(ctx, price); err != nil {
		return PriceResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PriceResult{}, err
	}

	return newPriceResult(price), nil
}
