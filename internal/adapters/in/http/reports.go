package http

import (
	"net/http"

	"sellerops/internal/core/application/usecases/commands"
	"sellerops/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GenerateReport handles POST /api/v1/reports.
func (s *Server) GenerateReport(ctx echo.Context) error {
	var body GenerateReportRequest
	if err := s.bind(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewGenerateReportCommand(body.ReportType, body.ReportName, body.Format, body.RequestedBy)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.handlers.GenerateReport.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ReportResponse{ReportID: result.ReportID, Status: result.Status.String()})
}

// RegenerateReport handles POST /api/v1/reports/{id}/regenerate.
func (s *Server) RegenerateReport(ctx echo.Context, id string) error {
	cmd, err := commands.NewRegenerateReportCommand(id)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return s.changeReportStatus(ctx, cmd)
}

// CompleteReport handles POST /api/v1/reports/{id}/complete, called by the report generator.
func (s *Server) CompleteReport(ctx echo.Context, id string) error {
	var body CompleteReportRequest
	if err := s.bind(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCompleteReportCommand(id, body.FileURL, body.FileSize)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return s.changeReportStatus(ctx, cmd)
}

// FailReport handles POST /api/v1/reports/{id}/fail.
func (s *Server) FailReport(ctx echo.Context, id string) error {
	cmd, err := commands.NewFailReportCommand(id)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return s.changeReportStatus(ctx, cmd)
}

func (s *Server) changeReportStatus(ctx echo.Context, cmd commands.ChangeReportStatusCommand) error {
	result, err := s.handlers.ChangeReportStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ReportResponse{ReportID: result.ReportID, Status: result.Status.String()})
}

// DownloadReport handles GET /api/v1/reports/{id}/download.
func (s *Server) DownloadReport(ctx echo.Context, id string) error {
	query, err := queries.NewDownloadReportQuery(id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	download, err := s.handlers.DownloadReport.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DownloadResponse{
		ReportID: download.ReportID,
		FileURL:  download.FileURL,
		FileSize: download.FileSize,
		Format:   download.Format,
	})
}

// CreateScheduledReport handles POST /api/v1/scheduled-reports.
func (s *Server) CreateScheduledReport(ctx echo.Context) error {
	var body CreateScheduledReportRequest
	if err := s.bind(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCreateScheduledReportCommand(commands.ScheduleInput{
		ScheduleID:  body.ScheduleID,
		ReportType:  body.ReportType,
		ReportName:  body.ReportName,
		Format:      body.Format,
		Frequency:   body.Frequency,
		NextRunDate: body.NextRunDate,
		Recipients:  body.EmailRecipients,
	})
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.CreateScheduledReport.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ScheduleActivationResponse{ScheduleID: cmd.ScheduleID().String(), IsActive: true})
}

// RunScheduledReport handles POST /api/v1/scheduled-reports/{id}/run-now.
func (s *Server) RunScheduledReport(ctx echo.Context, id string) error {
	cmd, err := commands.NewRunScheduledReportCommand(id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.handlers.RunScheduledReport.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ReportResponse{ReportID: result.ReportID, Status: result.Status.String()})
}

func (s *Server) ActivateScheduledReport(ctx echo.Context, id string) error {
	return s.setScheduleActivation(ctx, id, true)
}

func (s *Server) DeactivateScheduledReport(ctx echo.Context, id string) error {
	return s.setScheduleActivation(ctx, id, false)
}

func (s *Server) setScheduleActivation(ctx echo.Context, id string, active bool) error {
	cmd, err := commands.NewSetScheduleActivationCommand(id, active)
	if err != nil {
		return s.respondError(ctx, err)
	}

	isActive, err := s.handlers.SetScheduleActivation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ScheduleActivationResponse{ScheduleID: cmd.ScheduleID().String(), IsActive: isActive})
}
