package commands

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
)

// ChangeReportStatusCommandHandler regenerates, completes or fails a report.
//
// Example:
//
//	handler := NewChangeReportStatusCommandHandler(uowFactory, clock)
//	cmd, _ := NewCompleteReportCommand("RPT-1", "https://files.example.com/sales.csv", 2048)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("No such report")
//	case errors.Is(err, errs.ErrValueIsInvalid):
//	    log.Println("File URL is not a valid URL")
//	case err != nil:
//	    log.Printf("Completion failed: %v", err)
//	default:
//	    log.Printf("Report is %s", result.Status)
//	}
type ChangeReportStatusCommandHandler struct {
	uowFactory ReportUoWFactory
	clock      kernel.Clock
}

func NewChangeReportStatusCommandHandler(
	uowFactory ReportUoWFactory,
	clock kernel.Clock,
) ChangeReportStatusCommandHandler {
	return ChangeReportStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h ChangeReportStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeReportStatusCommand,
) (ReportResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReportResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ReportResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reportRepo := uow.ReportRepository()
	rep, err := reportRepo.Get(ctx, cmd.ReportID())
	if err != nil {
		return ReportResult{}, err
	}

	switch cmd.Action() {
	case RegenerateReport:
		rep.Regenerate()
	case CompleteReport:
		if err = rep.Complete(cmd.FileURL(), cmd.FileSize(), h.clock.Now()); err != nil {
			return ReportResult{}, err
		}
	case FailReport:
		rep.Fail()
	}

	if err = reportRepo.Update(ctx, rep); err != nil {
		return ReportResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ReportResult{}, err
	}

	return ReportResult{ReportID: rep.ID().String(), Status: rep.Status()}, nil
}
