package commands

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/returns"
)

// MoveReplacementCommandHandler dispatches a replacement under a tracking id
// or marks it completed.
//
// Example:
//
//	handler := NewMoveReplacementCommandHandler(uowFactory, clock)
//	cmd, _ := NewDispatchReplacementCommand("RPL-1", "TRK-9")
//	status, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("No such replacement")
//	case errors.Is(err, errs.ErrValueIsRequired):
//	    log.Println("Dispatch needs a tracking id")
//	case err != nil:
//	    log.Printf("Dispatch failed: %v", err)
//	default:
//	    log.Printf("Replacement is %s", status)
//	}
type MoveReplacementCommandHandler struct {
	uowFactory ReturnUoWFactory
	clock      kernel.Clock
}

func NewMoveReplacementCommandHandler(
	uowFactory ReturnUoWFactory,
	clock kernel.Clock,
) MoveReplacementCommandHandler {
	return MoveReplacementCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h MoveReplacementCommandHandler) Handle(
	ctx context.Context,
	cmd MoveReplacementCommand,
) (returns.ReplacementStatus, error) {
	if err := cmd.Validate(); err != nil {
		return returns.UnknownReplacementStatus, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return returns.UnknownReplacementStatus, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	replacementRepo := uow.ReplacementRepository()
	replacement, err := replacementRepo.Get(ctx, cmd.ReplacementID())
	if err != nil {
		return returns.UnknownReplacementStatus, err
	}

	now := h.clock.Now()
	switch cmd.Move() {
	case MoveReplacementDispatch:
		if err = replacement.Dispatch(cmd.TrackingID(), now); err != nil {
			return returns.UnknownReplacementStatus, err
		}
	case MoveReplacementComplete:
		replacement.Complete(now)
	}

	if err = replacementRepo.Update(ctx, replacement); err != nil {
		return returns.UnknownReplacementStatus, err
	}

	if err = uow.Commit(ctx); err != nil {
		return returns.UnknownReplacementStatus, err
	}

	return replacement.Status(), nil
}
