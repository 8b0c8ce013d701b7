package commands

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
)

// UpdateStockCommandHandler writes the quantities present in a stock patch and leaves
// the others as stored. Nothing is written when any present quantity is negative.
//
// Example:
//
//	available := 12
//	patch := inventory.StockPatch{Available: &available}
//	cmd, err := NewUpdateStockCommand("SKU-1", patch)
//	if err != nil {
//	    return err
//	}
//	stock, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("No stock record for this sku")
//	case errors.Is(err, errs.ErrValueIsOutOfRange):
//	    log.Println("Quantities cannot be negative")
//	case err == nil:
//	    log.Printf("Total on hand: %d", stock.Total)
//	}
type UpdateStockCommandHandler struct {
	uowFactory CatalogUoWFactory
	clock      kernel.Clock
}

func NewUpdateStockCommandHandler(uowFactory CatalogUoWFactory, clock kernel.Clock) UpdateStockCommandHandler {
	return UpdateStockCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h UpdateStockCommandHandler) Handle(ctx context.Context, cmd UpdateStockCommand) (StockResult, error) {
	if err := cmd.Validate(); err != nil {
		return StockResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return StockResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stockRepo := uow.StockRepository()
	stock, err := stockRepo.Get(ctx, cmd.SKU())
	if err != nil {
		return StockResult{}, err
	}

	if err = stock.ApplyPatch(cmd.Patch(), h.clock.Now()); err != nil {
		return StockResult{}, err
	}

	if err = stockRepo.Update(ctx, stock); err != nil {
		return StockResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return StockResult{}, err
	}

	return newStockResult(stock), nil
}
