package commands

import (
	"errors"
	"strings"
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/report"
	"sellerops/internal/pkg/errs"
	"sellerops/internal/pkg/guard"
)

var ErrCreateScheduledReportCommandIsNotConstructed = errors.New(
	"CreateScheduledReportCommand must be created via NewCreateScheduledReportCommand constructor",
)

type ScheduleInput struct {
	ScheduleID  string
	ReportType  string
	ReportName  string
	Format      string
	Frequency   string
	NextRunDate time.Time
	Recipients  []string
}

type CreateScheduledReportCommand struct { //nolint:recvcheck //using for validation
	scheduleID  kernel.ID
	definition  report.Definition
	frequency   report.Frequency
	nextRunDate time.Time
	recipients  []string

	guard guard.ConstructorGuard
}

// NewCreateScheduledReportCommand defaults an empty report name to "<TYPE> Report".
func NewCreateScheduledReportCommand(input ScheduleInput) (CreateScheduledReportCommand, error) {
	id, idErr := parseID("schedule_id", input.ScheduleID)
	definition, defErr := parseDefinition(input.ReportType, input.ReportName, input.Format)
	frequency, freqErr := report.ParseFrequency(strings.ToUpper(strings.TrimSpace(input.Frequency)))

	var nextRunErr error
	if input.NextRunDate.IsZero() {
		nextRunErr = errs.NewValueIsRequiredError("next_run_date")
	}

	if err := errors.Join(idErr, defErr, freqErr, nextRunErr); err != nil {
		return CreateScheduledReportCommand{}, err
	}

	if definition.Name == "" {
		definition.Name = definition.Type.String() + " Report"
	}

	return CreateScheduledReportCommand{
		scheduleID:  id,
		definition:  definition,
		frequency:   frequency,
		nextRunDate: input.NextRunDate,
		recipients:  input.Recipients,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateScheduledReportCommand) Validate() error {
	return c.guard.Validate(ErrCreateScheduledReportCommandIsNotConstructed)
}

func (c CreateScheduledReportCommand) ScheduleID() kernel.ID         { return c.scheduleID }
func (c CreateScheduledReportCommand) Definition() report.Definition { return c.definition }
func (c CreateScheduledReportCommand) Frequency() report.Frequency   { return c.frequency }
func (c CreateScheduledReportCommand) NextRunDate() time.Time        { return c.nextRunDate }
func (c CreateScheduledReportCommand) Recipients() []string          { return c.recipients }
