package reportrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/report"
	"sellerops/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReportMetricsDTO is keyed by report_id; filters_applied holds a JSON object or is empty.
type ReportMetricsDTO struct {
	ReportID       string          `gorm:"column:report_id;primaryKey;size:100"`
	TotalRecords   int64           `gorm:"column:total_records;not null"`
	ProcessingTime decimal.Decimal `gorm:"column:processing_time;type:numeric(12,2);not null"`
	DataRangeStart time.Time       `gorm:"column:data_range_start;not null"`
	DataRangeEnd   time.Time       `gorm:"column:data_range_end;not null"`
	FiltersApplied string          `gorm:"column:filters_applied;not null;default:''"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime:false"`
}

func (ReportMetricsDTO) TableName() string {
	return "report_metrics"
}

// GormReportMetricsRepository writes metrics once and never updates them.
type GormReportMetricsRepository struct {
	db *gorm.DB
}

func NewGormReportMetricsRepository(db *gorm.DB) *GormReportMetricsRepository {
	return &GormReportMetricsRepository{db: db}
}

// Add inserts the metrics. Metrics already recorded for the report yield ObjectAlreadyExistsError.
func (r *GormReportMetricsRepository) Add(ctx context.Context, metrics *report.Metrics) error {
	if err := metrics.Validate(); err != nil {
		return err
	}

	dto := ReportMetricsDTO{
		ReportID:       metrics.ReportID().String(),
		TotalRecords:   metrics.TotalRecords(),
		ProcessingTime: metrics.ProcessingTime(),
		DataRangeStart: metrics.DataRangeStart(),
		DataRangeEnd:   metrics.DataRangeEnd(),
		CreatedAt:      metrics.CreatedAt(),
	}
	if filters := metrics.FiltersApplied(); len(filters) > 0 {
		raw, err := json.Marshal(filters)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause("filters_applied", err)
		}
		dto.FiltersApplied = string(raw)
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.FromDatabase(err, "report metrics", dto.ReportID)
	}
	return nil
}

func (r *GormReportMetricsRepository) Get(ctx context.Context, reportID kernel.ID) (*report.Metrics, error) {
	if err := reportID.Validate(); err != nil {
		return nil, err
	}

	var dto ReportMetricsDTO
	if err := r.db.WithContext(ctx).First(&dto, "report_id = ?", reportID.String()).Error; err != nil {
		return nil, errs.FromDatabase(err, "report metrics", reportID.String())
	}

	var filters map[string]any
	if dto.FiltersApplied != "" {
		if err := json.Unmarshal([]byte(dto.FiltersApplied), &filters); err != nil {
			return nil, fmt.Errorf("decoding filters of report %s: %w", dto.ReportID, err)
		}
	}

	return report.NewMetrics(reportID, report.MetricsValues{
		TotalRecords:   dto.TotalRecords,
		ProcessingTime: dto.ProcessingTime,
		DataRangeStart: dto.DataRangeStart,
		DataRangeEnd:   dto.DataRangeEnd,
		FiltersApplied: filters,
	}, dto.CreatedAt)
}
