package commands

import (
	"errors"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/guard"
)

var ErrChangeReportStatusCommandIsNotConstructed = errors.New(
	"ChangeReportStatusCommand must be created via NewRegenerateReportCommand, " +
		"NewCompleteReportCommand or NewFailReportCommand",
)

type ReportAction int

const (
	RegenerateReport ReportAction = iota + 1
	CompleteReport
	FailReport
)

type ChangeReportStatusCommand struct { //nolint:recvcheck //using for validation
	reportID kernel.ID
	action   ReportAction
	fileURL  string
	fileSize int64

	guard guard.ConstructorGuard
}

func NewRegenerateReportCommand(reportID string) (ChangeReportStatusCommand, error) {
	return newChangeReportStatusCommand(reportID, RegenerateReport, "", 0)
}

// NewCompleteReportCommand leaves file checks to the aggregate.
func NewCompleteReportCommand(reportID, fileURL string, fileSize int64) (ChangeReportStatusCommand, error) {
	return newChangeReportStatusCommand(reportID, CompleteReport, fileURL, fileSize)
}

func NewFailReportCommand(reportID string) (ChangeReportStatusCommand, error) {
	return newChangeReportStatusCommand(reportID, FailReport, "", 0)
}

func newChangeReportStatusCommand(
	reportID string,
	action ReportAction,
	fileURL string,
	fileSize int64,
) (ChangeReportStatusCommand, error) {
	id, err := parseID("report_id", reportID)
	if err != nil {
		return ChangeReportStatusCommand{}, err
	}

	return ChangeReportStatusCommand{
		reportID: id,
		action:   action,
		fileURL:  fileURL,
		fileSize: fileSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeReportStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeReportStatusCommandIsNotConstructed)
}

func (c ChangeReportStatusCommand) ReportID() kernel.ID  { return c.reportID }
func (c ChangeReportStatusCommand) Action() ReportAction { return c.action }
func (c ChangeReportStatusCommand) FileURL() string      { return c.fileURL }
func (c ChangeReportStatusCommand) FileSize() int64      { return c.fileSize }
