package commands

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/order"
)

// DispatchOrderCommandHandler marks an order ready to dispatch.
//
// Example:
//
//	handler := NewDispatchOrderCommandHandler(uowFactory, clock)
//	cmd, _ := NewDispatchOrderCommand("ORD-1")
//	status, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("No such order")
//	case err != nil:
//	    log.Printf("Dispatch failed: %v", err)
//	default:
//	    log.Printf("Order is %s", status)
//	}
type DispatchOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

func NewDispatchOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle moves the order to READY_TO_DISPATCH whatever its current status.
func (h DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.Unknown, err
	}

	o.Dispatch(h.clock.Now())

	if err = orderRepo.Update(ctx, o); err != nil {
		return order.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Unknown, err
	}

	return o.Status(), nil
}
