package commands

import (
	"errors"
	"strings"

	"sellerops/internal/core/domain/model/report"
)

// parseDefinition reads the type, name and format of a report request. The name may be empty.
func parseDefinition(reportType, name, format string) (report.Definition, error) {
	t, typeErr := report.ParseType(strings.ToUpper(strings.TrimSpace(reportType)))
	f, formatErr := report.ParseFormat(strings.ToUpper(strings.TrimSpace(format)))
	if err := errors.Join(typeErr, formatErr); err != nil {
		return report.Definition{}, err
	}
	return report.Definition{Type: t, Name: strings.TrimSpace(name), Format: f}, nil
}
