// Package queries holds the read side: each query reads its model straight from the
// store with SQL and never loads aggregates.
package queries

import (
	"errors"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/errs"
)

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
