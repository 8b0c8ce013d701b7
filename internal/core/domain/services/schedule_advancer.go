package services

import (
	"fmt"
	"time"

	"sellerops/internal/core/domain/model/report"
	"sellerops/internal/pkg/errs"
)

// maxCatchUpSteps bounds the catch-up loop for schedules whose next run date lies far in the past.
const maxCatchUpSteps = 100000

type ScheduleAdvancer struct{}

func NewScheduleAdvancer() ScheduleAdvancer {
	return ScheduleAdvancer{}
}

// Run creates the report for a due schedule and advances next_run_date past now.
// Schedules that are inactive or not yet due are rejected with an ObjectStateConflictError.
func (a ScheduleAdvancer) Run(schedule *report.ScheduledReport, now time.Time) (*report.Report, error) {
	if err := schedule.Validate(); err != nil {
		return nil, err
	}
	if !schedule.IsDue(now) {
		return nil, errs.NewObjectStateConflictError(
			"scheduled report",
			schedule.ID().String(),
			"schedule is inactive or not due",
		)
	}

	next, err := a.NextRun(schedule.Frequency(), schedule.NextRunDate(), now)
	if err != nil {
		return nil, err
	}

	rep, err := schedule.RunNow(now)
	if err != nil {
		return nil, err
	}
	if err = schedule.Reschedule(next, now); err != nil {
		return nil, err
	}

	return rep, nil
}

// NextRun returns the first occurrence after now of the series starting at from.
func (a ScheduleAdvancer) NextRun(frequency report.Frequency, from time.Time, now time.Time) (time.Time, error) {
	if err := frequency.Validate(); err != nil {
		return time.Time{}, err
	}

	next := from
	for step := 0; !next.After(now); step++ {
		if step >= maxCatchUpSteps {
			return time.Time{}, errs.NewValueIsOutOfRangeErrorWithCause(
				"next_run_date", from, now, "unbounded",
				fmt.Errorf("more than %d missed %s runs", maxCatchUpSteps, frequency),
			)
		}
		next = advance(frequency, next)
	}
	return next, nil
}

func advance(frequency report.Frequency, t time.Time) time.Time {
	switch frequency {
	case report.Daily:
		return t.AddDate(0, 0, 1)
	case report.Weekly:
		return t.AddDate(0, 0, 7)
	case report.Monthly:
		return t.AddDate(0, 1, 0)
	case report.Quarterly:
		return t.AddDate(0, 3, 0)
	default:
		return t
	}
}
