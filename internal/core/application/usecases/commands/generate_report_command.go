package commands

import (
	"errors"
	"strings"

	"sellerops/internal/core/domain/model/report"
	"sellerops/internal/pkg/errs"
	"sellerops/internal/pkg/guard"
)

var ErrGenerateReportCommandIsNotConstructed = errors.New(
	"GenerateReportCommand must be created via NewGenerateReportCommand constructor",
)

type GenerateReportCommand struct { //nolint:recvcheck //using for validation
	definition  report.Definition
	requestedBy string

	guard guard.ConstructorGuard
}

func NewGenerateReportCommand(reportType, name, format, requestedBy string) (GenerateReportCommand, error) {
	definition, defErr := parseDefinition(reportType, name, format)

	requestedBy = strings.TrimSpace(requestedBy)
	var requesterErr error
	if requestedBy == "" {
		requesterErr = errs.NewValueIsRequiredError("requested_by")
	}

	if err := errors.Join(defErr, requesterErr); err != nil {
		return GenerateReportCommand{}, err
	}

	return GenerateReportCommand{
		definition:  definition,
		requestedBy: requestedBy,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c GenerateReportCommand) Validate() error {
	return c.guard.Validate(ErrGenerateReportCommandIsNotConstructed)
}

func (c GenerateReportCommand) Definition() report.Definition { return c.definition }
func (c GenerateReportCommand) RequestedBy() string           { return c.requestedBy }
