package commands

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
)

type UpdateSellingPriceCommandHandler struct {
	uowFactory PricingUoWFactory
	clock      kernel.Clock
}

func NewUpdateSellingPriceCommandHandler(
	uowFactory PricingUoWFactory,
	clock kernel.Clock,
) UpdateSellingPriceCommandHandler {
	return UpdateSellingPriceCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle sets the selling price and recomputes the discount against the listing price.
func (h UpdateSellingPriceCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateSellingPriceCommand,
) (PriceResult, error) {
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

	if err = price.UpdateSellingPrice(cmd.SellingPrice(), h.clock.Now()); err != nil {
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
