package commands

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
)

type PatchPriceCommandHandler struct {
	uowFactory PricingUoWFactory
	clock      kernel.Clock
}

func NewPatchPriceCommandHandler(uowFactory PricingUoWFactory, clock kernel.Clock) PatchPriceCommandHandler {
	return PatchPriceCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h PatchPriceCommandHandler) Handle(ctx context.Context, cmd PatchPriceCommand) (PriceResult, error) {
	if err := cmd.Validate(); err != nil {
		return PriceResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PriceResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	priceRepo := uow.PriceRepository()
	price, err := priceRepo.Get(ctx, cmd.PriceID())
	if err != nil {
		return PriceResult{}, err
	}

	if err = price.ApplyPatch(cmd.Patch(), h.clock.Now()); err != nil {
		return PriceResult{}, err
	}

	if err = priceRepo.Update(ctx, price); err != nil {
		return PriceResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PriceResult{}, err
	}

	return newPriceResult(price), nil
}
