package commands

import (
	"errors"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/errs"
)

// parseID converts a raw identifier and reports failures under paramName.
func parseID(paramName, raw string) (kernel.ID, error) {
	id, err := kernel.NewID(raw)
	if err == nil {
		return id, nil
	}
	if errors.Is(err, errs.ErrValueIsRequired) {
		return kernel.ID{}, errs.NewValueIsRequiredError(paramName)
	}
	return kernel.ID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
}
