package commands

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/returns"
)

// ChangeReturnStatusCommandHandler approves, rejects or completes a return.
//
// Example:
//
//	handler := NewChangeReturnStatusCommandHandler(uowFactory, clock)
//	cmd, _ := NewChangeReturnStatusCommand("RET-1", ApproveReturn)
//	status, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("No such return")
//	case err != nil:
//	    log.Printf("Approval failed: %v", err)
//	default:
//	    log.Printf("Return is %s", status)
//	}
type ChangeReturnStatusCommandHandler struct {
	uowFactory ReturnUoWFactory
	clock      kernel.Clock
}

func NewChangeReturnStatusCommandHandler(
	uowFactory ReturnUoWFactory,
	clock kernel.Clock,
) ChangeReturnStatusCommandHandler {
	return ChangeReturnStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle approves, rejects or completes a return regardless of its current status.
func (h ChangeReturnStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeReturnStatusCommand,
) (returns.ReturnStatus, error) {
	if err := cmd.Validate(); err != nil {
		return returns.UnknownReturnStatus, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return returns.UnknownReturnStatus, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	returnRepo := uow.ReturnRepository()
	ret, err := returnRepo.Get(ctx, cmd.ReturnID())
	if err != nil {
		return returns.UnknownReturnStatus, err
	}

	now := h.clock.Now()
	switch cmd.Action() {
	case ApproveReturn:
		ret.Approve(now)
	case RejectReturn:
		ret.Reject(now)
	case CompleteReturn:
		ret.Complete(now)
	}

	if err = returnRepo.Update(ctx, ret); err != nil {
		return returns.UnknownReturnStatus, err
	}

	if err = uow.Commit(ctx); err != nil {
		return returns.UnknownReturnStatus, err
	}

	return ret.Status(), nil
}
