package commands

import (
	"context"

	"sellerops/internal/core/domain/model/inventory"
	"sellerops/internal/core/domain/model/kernel"
)

type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
	clock      kernel.Clock
}

func NewCreateProductCommandHandler(uowFactory CatalogUoWFactory, clock kernel.Clock) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (RecordResult, error) {
	if err := cmd.Validate(); err != nil {
		return RecordResult{}, err
	}

	product, err := inventory.NewProduct(cmd.SKU(), cmd.Details(), h.clock.Now())
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

	if err = uow.ProductRepository().Add(ctx, product); err != nil {
		return RecordResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RecordResult{}, err
	}

	return RecordResult{
		ID:       product.SKU().String(),
		Status:   product.LifecycleStatus(),
		IsActive: product.IsActive(),
	}, nil
}
