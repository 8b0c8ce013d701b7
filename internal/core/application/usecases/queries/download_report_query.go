package queries

import (
	"errors"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/guard"
)

var ErrDownloadReportQueryIsNotConstructed = errors.New(
	"DownloadReportQuery must be created via NewDownloadReportQuery constructor",
)

type DownloadReportQuery struct {
	reportID kernel.ID

	guard guard.ConstructorGuard
}

func NewDownloadReportQuery(reportID string) (DownloadReportQuery, error) {
	id, err := parseID("report_id", reportID)
	if err != nil {
		return DownloadReportQuery{}, err
	}
	return DownloadReportQuery{reportID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q DownloadReportQuery) Validate() error {
	return q.guard.Validate(ErrDownloadReportQueryIsNotConstructed)
}

func (q DownloadReportQuery) ReportID() kernel.ID {
	return q.reportID
}

type DownloadReportQueryResponse struct {
	ReportID string
	FileURL  string
	FileSize *int64
	Format   string
}
