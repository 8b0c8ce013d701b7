package commands

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/returns"
	"sellerops/internal/pkg/errs"
)

type CreateReturnCommandHandler struct {
	uowFactory ReturnUoWFactory
	clock      kernel.Clock
}

func NewCreateReturnCommandHandler(uowFactory ReturnUoWFactory, clock kernel.Clock) CreateReturnCommandHandler {
	return CreateReturnCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle stores an INITIATED return. The order must exist and own the item.
func (h CreateReturnCommandHandler) Handle(ctx context.Context, cmd CreateReturnCommand) error {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if _, ok := o.Item(cmd.OrderItemID()); !ok {
		return errs.NewObjectNotFoundError("order item", cmd.OrderItemID())
	}

	ret, err := returns.NewReturn(
		cmd.ReturnID(),
		cmd.OrderID(),
		cmd.OrderItemID(),
		cmd.Reason(),
		cmd.Description(),
		cmd.RefundAmount(),
		cmd.PickupAddress(),
		h.clock.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.ReturnRepository().Add(ctx, ret); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
