package commands

import (
	"errors"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/guard"
)

var ErrRunScheduledReportCommandIsNotConstructed = errors.New(
	"RunScheduledReportCommand must be created via NewRunScheduledReportCommand constructor",
)

type RunScheduledReportCommand struct { //nolint:recvcheck //using for validation
	scheduleID kernel.ID

	guard guard.ConstructorGuard
}

func NewRunScheduledReportCommand(scheduleID string) (RunScheduledReportCommand, error) {
	id, err := parseID("schedule_id", scheduleID)
	if err != nil {
		return RunScheduledReportCommand{}, err
	}

	return RunScheduledReportCommand{
		scheduleID: id,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RunScheduledReportCommand) Validate() error {
	return c.guard.Validate(ErrRunScheduledReportCommandIsNotConstructed)
}

func (c RunScheduledReportCommand) ScheduleID() kernel.ID {
	return c.scheduleID
}
