package commands

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/returns"
)

type CreateRefundCommandHandler struct {
	uowFactory ReturnUoWFactory
	clock      kernel.Clock
}

func NewCreateRefundCommandHandler(uowFactory ReturnUoWFactory, clock kernel.Clock) CreateRefundCommandHandler {
	return CreateRefundCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle stores a PENDING refund for an existing return.
func (h CreateRefundCommandHandler) Handle(ctx context.Context, cmd CreateRefundCommand) error {
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

	refund, err := returns.NewRefund(cmd.TransactionID(), ret, cmd.Amount(), cmd.Method(), h.clock.Now())
	if err != nil {
		return err
	}

	if err = uow.RefundRepository().Add(ctx, refund); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
