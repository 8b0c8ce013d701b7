package commands

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
)

type SetScheduleActivationCommandHandler struct {
	uowFactory ReportUoWFactory
	clock      kernel.Clock
}

func NewSetScheduleActivationCommandHandler(
	uowFactory ReportUoWFactory,
	clock kernel.Clock,
) SetScheduleActivationCommandHandler {
	return SetScheduleActivationCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns the resulting is_active flag.
func (h SetScheduleActivationCommandHandler) Handle(
	ctx context.Context,
	cmd SetScheduleActivationCommand,
) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	scheduleRepo := uow.ScheduledReportRepository()
	schedule, err := scheduleRepo.Get(ctx, cmd.ScheduleID())
	if err != nil {
		return false, err
	}

	if cmd.Active() {
		schedule.Activate(h.clock.Now())
	} else {
		schedule.Deactivate(h.clock.Now())
	}

	if err = scheduleRepo.Update(ctx, schedule); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return schedule.IsActive(), nil
}
