package commands

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/report"
)

// ReportResult identifies a report and its status after a write.
type ReportResult struct {
	ReportID string
	Status   report.Status
}

type GenerateReportCommandHandler struct {
	uowFactory ReportUoWFactory
	clock      kernel.Clock
}

func NewGenerateReportCommandHandler(uowFactory ReportUoWFactory, clock kernel.Clock) GenerateReportCommandHandler {
	return GenerateReportCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle records an IN_PROGRESS report. File generation happens outside this service.
func (h GenerateReportCommandHandler) Handle(ctx context.Context, cmd GenerateReportCommand) (ReportResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReportResult{}, err
	}

	def := cmd.Definition()
	rep, err := report.Generate(def.Type, def.Name, def.Format, cmd.RequestedBy(), h.clock.Now())
	if err != nil {
		return ReportResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return ReportResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ReportRepository().Add(ctx, rep); err != nil {
		return ReportResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ReportResult{}, err
	}

	return ReportResult{ReportID: rep.ID().String(), Status: rep.Status()}, nil
}
