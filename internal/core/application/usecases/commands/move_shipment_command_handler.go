package commands

import (
	"context"
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/shipment"
)

// MoveShipmentResult describes the shipment after the move and the event it appended.
type MoveShipmentResult struct {
	Status             shipment.Status
	Event              shipment.TrackingEvent
	ActualDeliveryDate *time.Time
}

// MoveShipmentCommandHandler dispatches or delivers a shipment and appends
// the matching tracking event.
//
// Example:
//
//	handler := NewMoveShipmentCommandHandler(uowFactory, clock)
//	cmd, _ := NewDeliverShipmentCommand("SHIP-1", "Front door")
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("No such shipment")
//	case err != nil:
//	    log.Printf("Delivery failed: %v", err)
//	default:
//	    log.Printf("Delivered at %s", result.ActualDeliveryDate)
//	}
type MoveShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      kernel.Clock
}

func NewMoveShipmentCommandHandler(uowFactory ShipmentUoWFactory, clock kernel.Clock) MoveShipmentCommandHandler {
	return MoveShipmentCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle updates the shipment status and inserts the tracking event in one transaction.
func (h MoveShipmentCommandHandler) Handle(ctx context.Context, cmd MoveShipmentCommand) (MoveShipmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return MoveShipmentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return MoveShipmentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	s, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return MoveShipmentResult{}, err
	}

	var event shipment.TrackingEvent
	switch cmd.Move() {
	case MoveDeliver:
		event = s.Deliver(cmd.Location(), h.clock.Now())
	default:
		event = s.Dispatch(cmd.Location(), h.clock.Now())
	}

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return MoveShipmentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return MoveShipmentResult{}, err
	}

	return MoveShipmentResult{
		Status:             s.Status(),
		Event:              event,
		ActualDeliveryDate: s.ActualDeliveryDate(),
	}, nil
}
