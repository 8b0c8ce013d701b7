package ports

import (
	"context"
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/report"
)

type ReportRepository interface {
	Add(ctx context.Context, aggregate *report.Report) error

	Update(ctx context.Context, aggregate *report.Report) error

	Get(ctx context.Context, id kernel.ID) (*report.Report, error)
}

type ScheduledReportRepository interface {
	Add(ctx context.Context, aggregate *report.ScheduledReport) error

	Update(ctx context.Context, aggregate *report.ScheduledReport) error

	Get(ctx context.Context, id kernel.ID) (*report.ScheduledReport, error)

	// GetAllDue returns active schedules whose next run date is not after now,
	// earliest first.
	GetAllDue(ctx context.Context, now time.Time) ([]*report.ScheduledReport, error)
}

// ReportMetricsRepository stores the write-once metrics of a report.
type ReportMetricsRepository interface {
	Add(ctx context.Context, metrics *report.Metrics) error

	Get(ctx context.Context, reportID kernel.ID) (*report.Metrics, error)
}
