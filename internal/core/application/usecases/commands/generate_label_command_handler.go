package commands

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/shipment"
)

type GenerateLabelCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      kernel.Clock
}

func NewGenerateLabelCommandHandler(uowFactory ShipmentUoWFactory, clock kernel.Clock) GenerateLabelCommandHandler {
	return GenerateLabelCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h GenerateLabelCommandHandler) Handle(ctx context.Context, cmd GenerateLabelCommand) (shipment.Label, error) {
	if err := cmd.Validate(); err != nil {
		return shipment.Label{}, err
	}

	now := h.clock.Now()
	label, err := shipment.NewLabel(cmd.LabelURL(), cmd.Format(), cmd.Barcode(), now)
	if err != nil {
		return shipment.Label{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return shipment.Label{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	s, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return shipment.Label{}, err
	}

	if err = s.GenerateLabel(label, now); err != nil {
		return shipment.Label{}, err
	}

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return shipment.Label{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return shipment.Label{}, err
	}

	return label, nil
}
