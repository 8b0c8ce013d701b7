package jobs

import (
	"fmt"

	"sellerops/internal/pkg/logger"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	scheduledReportJob *ScheduledReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	runDueSchedulesHandler dueSchedulesRunner,
	scheduledReportSpec string,
	metrics jobRecorder,
	log *logger.Logger,
) *JobManager {
	return &JobManager{
		scheduledReportJob: NewScheduledReportJob(runDueSchedulesHandler, scheduledReportSpec, metrics, log),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.scheduledReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start scheduled report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.scheduledReportJob.Stop()
}
