package commands

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/shipment"
)

type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      kernel.Clock
}

func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory, clock kernel.Clock) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle stores a CREATED shipment for an existing order.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
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

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	s, err := shipment.NewShipment(cmd.ShipmentID(), cmd.OrderID(), cmd.TrackingNumber(), cmd.Details(), h.clock.Now())
	if err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Add(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
