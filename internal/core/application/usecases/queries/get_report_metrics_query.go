package queries

import (
	"errors"
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetReportMetricsQueryIsNotConstructed = errors.New(
	"GetReportMetricsQuery must be created via NewGetReportMetricsQuery constructor",
)

type GetReportMetricsQuery struct {
	reportID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetReportMetricsQuery(reportID string) (GetReportMetricsQuery, error) {
	id, err := parseID("report_id", reportID)
	if err != nil {
		return GetReportMetricsQuery{}, err
	}
	return GetReportMetricsQuery{reportID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetReportMetricsQuery) Validate() error {
	return q.guard.Validate(ErrGetReportMetricsQueryIsNotConstructed)
}

func (q GetReportMetricsQuery) ReportID() kernel.ID {
	return q.reportID
}

// GetReportMetricsQueryResponse carries the filters as the raw JSON object they were stored as.
type GetReportMetricsQueryResponse struct {
	ReportID       string
	TotalRecords   int64
	ProcessingTime decimal.Decimal
	DataRangeStart time.Time
	DataRangeEnd   time.Time
	FiltersApplied string
	CreatedAt      time.Time
}
