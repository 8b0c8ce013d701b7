package commands

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/returns"
)

// ChangeRefundStatusCommandHandler processes or completes a refund.
//
// Example:
//
//	handler := NewChangeRefundStatusCommandHandler(uowFactory, clock)
//	cmd, _ := NewChangeRefundStatusCommand("TXN-1", CompleteRefund)
//	status, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("No such refund")
//	case err != nil:
//	    log.Printf("Completion failed: %v", err)
//	default:
//	    log.Printf("Refund is %s", status)
//	}
type ChangeRefundStatusCommandHandler struct {
	uowFactory ReturnUoWFactory
	clock      kernel.Clock
}

func NewChangeRefundStatusCommandHandler(
	uowFactory ReturnUoWFactory,
	clock kernel.Clock,
) ChangeRefundStatusCommandHandler {
	return ChangeRefundStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle moves the refund to PROCESSED, or to COMPLETED with the completion date stamped.
func (h ChangeRefundStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeRefundStatusCommand,
) (returns.RefundStatus, error) {
	if err := cmd.Validate(); err != nil {
		return returns.UnknownRefundStatus, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return returns.UnknownRefundStatus, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	refundRepo := uow.RefundRepository()
	refund, err := refundRepo.Get(ctx, cmd.TransactionID())
	if err != nil {
		return returns.UnknownRefundStatus, err
	}

	switch cmd.Action() {
	case ProcessRefund:
		refund.Process()
	case CompleteRefund:
		refund.Complete(h.clock.Now())
	}

	if err = refundRepo.Update(ctx, refund); err != nil {
		return returns.UnknownRefundStatus, err
	}

	if err = uow.Commit(ctx); err != nil {
		return returns.UnknownRefundStatus, err
	}

	return refund.Status(), nil
}
