package commands

import (
	"errors"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/pricing"
	"sellerops/internal/pkg/errs"
	"sellerops/internal/pkg/guard"
)

var ErrPatchPriceCommandIsNotConstructed = errors.New(
	"PatchPriceCommand must be created via NewPatchPriceCommand constructor",
)

type PatchPriceCommand struct { //nolint:recvcheck //using for validation
	priceID kernel.ID
	patch   pricing.PricePatch

	guard guard.ConstructorGuard
}

// NewPatchPriceCommand rejects a patch that carries no field.
func NewPatchPriceCommand(priceID string, patch pricing.PricePatch) (PatchPriceCommand, error) {
	id, idErr := parseID("price_id", priceID)

	var patchErr error
	if patch.IsEmpty() {
		patchErr = errs.NewValueIsRequiredError("price fields")
	}

	if err := errors.Join(idErr, patchErr); err != nil {
		return PatchPriceCommand{}, err
	}

	return PatchPriceCommand{
		priceID: id,
		patch:   patch,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c PatchPriceCommand) Validate() error {
	return c.guard.Validate(ErrPatchPriceCommandIsNotConstructed)
}

func (c PatchPriceCommand) PriceID() kernel.ID        { return c.priceID }
func (c PatchPriceCommand) Patch() pricing.PricePatch { return c.patch }
