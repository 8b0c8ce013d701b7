package commands

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/order"
)

// CancelOrderResult is returned to the caller after a successful cancellation.
type CancelOrderResult struct {
	CancellationID string
	Status         order.Status
}

// CancelOrderCommandHandler cancels an order and stores its cancellation record.
// The refund amount defaults to the order total when the command carries none.
//
// Example:
//
//	handler := NewCancelOrderCommandHandler(uowFactory, clock)
//	cmd, _ := NewCancelOrderCommand("ORD-1", "Customer request", "CUSTOMER", nil)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("No such order")
//	case errors.Is(err, errs.ErrObjectAlreadyExists):
//	    log.Println("Order is already cancelled")
//	case err != nil:
//	    log.Printf("Cancellation failed: %v", err)
//	default:
//	    log.Printf("Cancelled as %s", result.CancellationID)
//	}
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle records the cancellation and the CANCELLED status in one transaction.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (CancelOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CancelOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CancelOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return CancelOrderResult{}, err
	}

	cancellation, err := o.Cancel(cmd.Reason(), cmd.CancelledBy(), cmd.RefundAmount(), h.clock.Now())
	if err != nil {
		return CancelOrderResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return CancelOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CancelOrderResult{}, err
	}

	return CancelOrderResult{
		CancellationID: cancellation.ID().String(),
		Status:         o.Status(),
	}, nil
}
