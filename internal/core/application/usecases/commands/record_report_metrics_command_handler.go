package commands

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/report"
)

// RecordReportMetricsCommandHandler stores the generation metrics of an existing report.
// Metrics are written once; a second recording yields ObjectAlreadyExistsError.
type RecordReportMetricsCommandHandler struct {
	uowFactory ReportUoWFactory
	clock      kernel.Clock
}

func NewRecordReportMetricsCommandHandler(
	uowFactory ReportUoWFactory,
	clock kernel.Clock,
) RecordReportMetricsCommandHandler {
	return RecordReportMetricsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h RecordReportMetricsCommandHandler) Handle(ctx context.Context, cmd RecordReportMetricsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	metrics, err := report.NewMetrics(cmd.ReportID(), cmd.Values(), h.clock.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.ReportRepository().Get(ctx, cmd.ReportID()); err != nil {
		return err
	}

	if err = uow.ReportMetricsRepository().Add(ctx, metrics); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
