package commands

import (
	"context"

	"sellerops/internal/core/domain/model/inventory"
	"sellerops/internal/core/domain/model/kernel"
)

type CreateStockCommandHandler struct {
	uowFactory CatalogUoWFactory
	clock      kernel.Clock
}

func NewCreateStockCommandHandler(uowFactory CatalogUoWFactory, clock kernel.Clock) CreateStockCommandHandler {
	return CreateStockCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle opens the stock record of an existing product. A product has at most one.
func (h CreateStockCommandHandler) Handle(ctx context.Context, cmd CreateStockCommand) (StockResult, error) {
	if err := cmd.Validate(); err != nil {
		return StockResult{}, err
	}

	stock, err := inventory.NewStock(
		cmd.SKU(),
		cmd.Quantities(),
		cmd.WarehouseLocation(),
		cmd.ProcurementSLA(),
		h.clock.Now(),
	)
	if err != nil {
		return StockResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return StockResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.ProductRepository().Get(ctx, cmd.SKU()); err != nil {
		return StockResult{}, err
	}

	if err = uow.StockRepository().Add(ctx, stock); err != nil {
		return StockResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return StockResult{}, err
	}

	return newStockResult(stock), nil
}
