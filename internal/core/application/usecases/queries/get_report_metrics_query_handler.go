package queries

import (
	"context"

	"sellerops/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetReportMetricsQueryHandler struct {
	db *gorm.DB
}

func NewGetReportMetricsQueryHandler(db *gorm.DB) GetReportMetricsQueryHandler {
	return GetReportMetricsQueryHandler{db: db}
}

func (h GetReportMetricsQueryHandler) Handle(
	ctx context.Context,
	query GetReportMetricsQuery,
) (GetReportMetricsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetReportMetricsQueryResponse{}, err
	}

	var response GetReportMetricsQueryResponse
	result := h.db.WithContext(ctx).Raw(`
		SELECT
			report_id,
			total_records,
			processing_time,
			data_range_start,
			data_range_end,
			filters_applied,
			created_at
		FROM report_metrics
		WHERE report_id = ?
	`, query.ReportID().String()).Scan(&response)
	if result.Error != nil {
		return GetReportMetricsQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetReportMetricsQueryResponse{}, errs.NewObjectNotFoundError("report metrics", query.ReportID().String())
	}
	return response, nil
}
