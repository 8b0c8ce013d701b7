package commands

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/report"
)

type CreateScheduledReportCommandHandler struct {
	uowFactory ReportUoWFactory
	clock      kernel.Clock
}

func NewCreateScheduledReportCommandHandler(
	uowFactory ReportUoWFactory,
	clock kernel.Clock,
) CreateScheduledReportCommandHandler {
	return CreateScheduledReportCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h CreateScheduledReportCommandHandler) Handle(ctx context.Context, cmd CreateScheduledReportCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	schedule, err := report.NewScheduledReport(
		cmd.ScheduleID(),
		cmd.Definition(),
		cmd.Frequency(),
		cmd.NextRunDate(),
		cmd.Recipients(),
		h.clock.Now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ScheduledReportRepository().Add(ctx, schedule); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
