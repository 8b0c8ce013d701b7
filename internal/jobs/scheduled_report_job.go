package jobs

import (
	"context"
	"errors"
	"time"

	"sellerops/internal/core/application/usecases/commands"
	"sellerops/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

const (
	ScheduledReportJobName = "scheduled_reports"

	// DefaultScheduledReportSpec runs the job at the start of every minute.
	DefaultScheduledReportSpec = "0 * * * * *"
)

type dueSchedulesRunner interface {
	Handle(ctx context.Context, cmd commands.RunDueSchedulesCommand) ([]string, error)
}

type jobRecorder interface {
	ObserveDuration(job string, duration time.Duration)
	IncSuccess(job string)
	IncFailure(job string)
	AddProcessed(job string, n int)
}

// ScheduledReportJob creates the reports of every due schedule and advances their
// next run date.
type ScheduledReportJob struct {
	handler dueSchedulesRunner
	spec    string
	cron    *cron.Cron
	metrics jobRecorder
	logger  *logger.Logger
}

// NewScheduledReportJob creates the job. An empty spec falls back to DefaultScheduledReportSpec.
// Runs never overlap: a tick that fires while the previous run is busy is skipped.
func NewScheduledReportJob(
	handler dueSchedulesRunner,
	spec string,
	metrics jobRecorder,
	log *logger.Logger,
) *ScheduledReportJob {
	if spec == "" {
		spec = DefaultScheduledReportSpec
	}
	return &ScheduledReportJob{
		handler: handler,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		metrics: metrics,
		logger:  log.With("component", "scheduled_report_job"),
	}
}

// Start registers the job with its cron spec and starts the scheduler.
func (j *ScheduledReportJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.With("spec", j.spec).Info(context.Background(), "Scheduled report job started")
	return nil
}

// RunOnce performs a single pass over the due schedules.
func (j *ScheduledReportJob) RunOnce(ctx context.Context) {
	start := time.Now()
	reportIDs, err := j.handler.Handle(ctx, commands.NewRunDueSchedulesCommand())
	j.metrics.ObserveDuration(ScheduledReportJobName, time.Since(start))

	switch {
	case errors.Is(err, commands.ErrNoDueSchedules):
		j.metrics.IncSuccess(ScheduledReportJobName)
	case err != nil:
		j.metrics.IncFailure(ScheduledReportJobName)
		j.metrics.AddProcessed(ScheduledReportJobName, len(reportIDs))
		j.logger.With("reports_created", len(reportIDs)).Error(ctx, "Scheduled report job failed", err)
	default:
		j.metrics.IncSuccess(ScheduledReportJobName)
		j.metrics.AddProcessed(ScheduledReportJobName, len(reportIDs))
		j.logger.With("reports_created", len(reportIDs)).Info(ctx, "Scheduled reports created")
	}
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *ScheduledReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info(context.Background(), "Scheduled report job stopped")
}
