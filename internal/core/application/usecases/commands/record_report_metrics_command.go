package commands

import (
	"errors"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/report"
	"sellerops/internal/pkg/guard"
)

var ErrRecordReportMetricsCommandIsNotConstructed = errors.New(
	"RecordReportMetricsCommand must be created via NewRecordReportMetricsCommand constructor",
)

type RecordReportMetricsCommand struct { //nolint:recvcheck //using for validation
	reportID kernel.ID
	values   report.MetricsValues

	guard guard.ConstructorGuard
}

func NewRecordReportMetricsCommand(reportID string, values report.MetricsValues) (RecordReportMetricsCommand, error) {
	id, err := parseID("report_id", reportID)
	if err != nil {
		return RecordReportMetricsCommand{}, err
	}

	return RecordReportMetricsCommand{
		reportID: id,
		values:   values,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RecordReportMetricsCommand) Validate() error {
	return c.guard.Validate(ErrRecordReportMetricsCommandIsNotConstructed)
}

func (c RecordReportMetricsCommand) ReportID() kernel.ID          { return c.reportID }
func (c RecordReportMetricsCommand) Values() report.MetricsValues { return c.values }
