// Package jobs provides scheduled background tasks for the seller operations service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ScheduledReportJob - creates a report for every active schedule whose next run date
// has passed and moves that date forward by the schedule's frequency
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(runDueSchedulesHandler, cfg.ScheduledReportsCron, jobMetrics, log)
//
//	if err := jobManager.StartAll(); err != nil {
//		return fmt.Errorf("start jobs: %w", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Specs use the six-field cron syntax with seconds ("0 * * * * *" is the default, once a
// minute) or a descriptor such as "@every 5m". A schedule whose run date is far in the
// past is caught up in one pass rather than once per missed period.
//
// # Error Handling
//
// - ErrNoDueSchedules is an expected outcome and only counts as a successful run
// - Failures of individual schedules are logged; the other schedules still run
// - Failed job starts are returned from StartAll
package jobs
