package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/services"
	"sellerops/internal/pkg/errs"
)

var ErrNoDueSchedules = errors.New("no due schedules")

// RunDueSchedulesCommandHandler is the body of the scheduled report job.
// Each due schedule runs in its own transaction so one failure does not hold back the rest.
type RunDueSchedulesCommandHandler struct {
	uowFactory ReportUoWFactory
	clock      kernel.Clock
	advancer   services.ScheduleAdvancer
}

func NewRunDueSchedulesCommandHandler(uowFactory ReportUoWFactory, clock kernel.Clock) RunDueSchedulesCommandHandler {
	return RunDueSchedulesCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		advancer:   services.NewScheduleAdvancer(),
	}
}

// Handle returns the ids of the reports it created. ErrNoDueSchedules is returned
// when nothing was due; failures of individual schedules are joined.
func (h RunDueSchedulesCommandHandler) Handle(ctx context.Context, cmd RunDueSchedulesCommand) ([]string, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	due, err := h.findDue(ctx, now)
	if err != nil {
		return nil, err
	}
	if len(due) == 0 {
		return nil, ErrNoDueSchedules
	}

	reportIDs := make([]string, 0, len(due))
	var runErrs []error
	for _, scheduleID := range due {
		reportID, runErr := h.runOne(ctx, scheduleID, now)
		switch {
		case errors.Is(runErr, errs.ErrObjectStateConflict):
			// deactivated or advanced since it was listed
			continue
		case runErr != nil:
			runErrs = append(runErrs, fmt.Errorf("schedule %s: %w", scheduleID, runErr))
			continue
		}
		reportIDs = append(reportIDs, reportID)
	}

	return reportIDs, errors.Join(runErrs...)
}

func (h RunDueSchedulesCommandHandler) findDue(ctx context.Context, now time.Time) ([]kernel.ID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	schedules, err := uow.ScheduledReportRepository().GetAllDue(ctx, now)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.ID, 0, len(schedules))
	for _, s := range schedules {
		ids = append(ids, s.ID())
	}
	return ids, nil
}

func (h RunDueSchedulesCommandHandler) runOne(ctx context.Context, scheduleID kernel.ID, now time.Time) (string, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	scheduleRepo := uow.ScheduledReportRepository()
	schedule, err := scheduleRepo.Get(ctx, scheduleID)
	if err != nil {
		return "", err
	}

	rep, err := h.advancer.Run(schedule, now)
	if err != nil {
		return "", err
	}

	if err = uow.ReportRepository().Add(ctx, rep); err != nil {
		return "", err
	}

	if err = scheduleRepo.Update(ctx, schedule); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return rep.ID().String(), nil
}
