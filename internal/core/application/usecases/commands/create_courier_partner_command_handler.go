package commands

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/shipment"
)

type CreateCourierPartnerCommandHandler struct {
	uowFactory CourierUoWFactory
	clock      kernel.Clock
}

func NewCreateCourierPartnerCommandHandler(
	uowFactory CourierUoWFactory,
	clock kernel.Clock,
) CreateCourierPartnerCommandHandler {
	return CreateCourierPartnerCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h CreateCourierPartnerCommandHandler) Handle(
	ctx context.Context,
	cmd CreateCourierPartnerCommand,
) (RecordResult, error) {
	if err := cmd.Validate(); err != nil {
		return RecordResult{}, err
	}

	partner, err := shipment.NewCourierPartner(cmd.PartnerCode(), cmd.Contact(), h.clock.Now())
	if err != nil {
		return RecordResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return RecordResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CourierPartnerRepository().Add(ctx, partner); err != nil {
		return RecordResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RecordResult{}, err
	}

	return RecordResult{
		ID:       partner.Code().String(),
		Status:   partner.LifecycleStatus(),
		IsActive: partner.IsActive(),
	}, nil
}
