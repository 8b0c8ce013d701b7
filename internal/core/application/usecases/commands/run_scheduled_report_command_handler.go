package commands

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
)

// RunScheduledReportCommandHandler generates a report from a schedule on demand.
//
// Example:
//
//	handler := NewRunScheduledReportCommandHandler(uowFactory, clock)
//	cmd, _ := NewRunScheduledReportCommand("SCH-1")
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("No such schedule")
//	case err != nil:
//	    log.Printf("Run failed: %v", err)
//	default:
//	    log.Printf("Started report %s", result.ReportID)
//	}
type RunScheduledReportCommandHandler struct {
	uowFactory ReportUoWFactory
	clock      kernel.Clock
}

func NewRunScheduledReportCommandHandler(
	uowFactory ReportUoWFactory,
	clock kernel.Clock,
) RunScheduledReportCommandHandler {
	return RunScheduledReportCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle runs the schedule immediately. The next run date is not advanced.
func (h RunScheduledReportCommandHandler) Handle(
	ctx context.Context,
	cmd RunScheduledReportCommand,
) (ReportResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReportResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ReportResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	scheduleRepo := uow.ScheduledReportRepository()
	schedule, err := scheduleRepo.Get(ctx, cmd.ScheduleID())
	if err != nil {
		return ReportResult{}, err
	}

	rep, err := schedule.RunNow(h.clock.Now())
	if err != nil {
		return ReportResult{}, err
	}

	if err = uow.ReportRepository().Add(ctx, rep); err != nil {
		return ReportResult{}, err
	}

	if err = scheduleRepo.Update(ctx, schedule); err != nil {
		return ReportResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ReportResult{}, err
	}

	return ReportResult{ReportID: rep.ID().String(), Status: rep.Status()}, nil
}
