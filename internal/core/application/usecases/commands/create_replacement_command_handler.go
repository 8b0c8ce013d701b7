package commands

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/returns"
	"sellerops/internal/pkg/errs"
)

type CreateReplacementCommandHandler struct {
	uowFactory ReturnUoWFactory
	clock      kernel.Clock
}

func NewCreateReplacementCommandHandler(
	uowFactory ReturnUoWFactory,
	clock kernel.Clock,
) CreateReplacementCommandHandler {
	return CreateReplacementCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle opens a replacement for the return's order item. A return has at most one replacement.
func (h CreateReplacementCommandHandler) Handle(ctx context.Context, cmd CreateReplacementCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ret, err := uow.ReturnRepository().Get(ctx, cmd.ReturnID())
	if err != nil {
		return err
	}

	replacementRepo := uow.ReplacementRepository()
	exists, err := replacementRepo.ExistsForReturn(ctx, ret.ID())
	if err != nil {
		return err
	}
	if exists {
		return errs.NewObjectAlreadyExistsError("replacement for return", ret.ID().String())
	}

	replacement, err := returns.NewReplacement(cmd.ReplacementID(), ret, cmd.DeliveryAddress(), h.clock.Now())
	if err != nil {
		return err
	}

	if err = replacementRepo.Add(ctx, replacement); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
