package commands

import (
	"context"

	"sellerops/internal/core/domain/model/inventory"
	"sellerops/internal/core/domain/model/kernel"
)

type CreateListingCommandHandler struct {
	uowFactory CatalogUoWFactory
	clock      kernel.Clock
}

func NewCreateListingCommandHandler(uowFactory CatalogUoWFactory, clock kernel.Clock) CreateListingCommandHandler {
	return CreateListingCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle lists an existing product. A missing product yields ObjectNotFoundError.
func (h CreateListingCommandHandler) Handle(ctx context.Context, cmd CreateListingCommand) (RecordResult, error) {
	if err := cmd.Validate(); err != nil {
		return RecordResult{}, err
	}

	listing, err := inventory.NewListing(cmd.ListingID(), cmd.SKU(), cmd.Terms(), h.clock.Now())
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

	if _, err = uow.ProductRepository().Get(ctx, cmd.SKU()); err != nil {
		return RecordResult{}, err
	}

	if err = uow.ListingRepository().Add(ctx, listing); err != nil {
		return RecordResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RecordResult{}, err
	}

	return RecordResult{
		ID:       listing.ID().String(),
		Status:   listing.LifecycleStatus(),
		IsActive: listing.IsActive(),
	}, nil
}
