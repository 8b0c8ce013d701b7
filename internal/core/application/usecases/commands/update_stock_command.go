package commands

import (
	"errors"

	"sellerops/internal/core/domain/model/inventory"
	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/errs"
	"sellerops/internal/pkg/guard"
)

var ErrUpdateStockCommandIsNotConstructed = errors.New(
	"UpdateStockCommand must be created via NewUpdateStockCommand constructor",
)

type UpdateStockCommand struct { //nolint:recvcheck //using for validation
	sku   kernel.ID
	patch inventory.StockPatch

	guard guard.ConstructorGuard
}

// NewUpdateStockCommand rejects a patch that carries no quantity.
func NewUpdateStockCommand(sku string, patch inventory.StockPatch) (UpdateStockCommand, error) {
	id, idErr := parseID("sku", sku)

	var patchErr error
	if patch.IsEmpty() {
		patchErr = errs.NewValueIsRequiredError("stock quantities")
	}

	if err := errors.Join(idErr, patchErr); err != nil {
		return UpdateStockCommand{}, err
	}

	return UpdateStockCommand{
		sku:   id,
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateStockCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStockCommandIsNotConstructed)
}

func (c UpdateStockCommand) SKU() kernel.ID              { return c.sku }
func (c UpdateStockCommand) Patch() inventory.StockPatch { return c.patch }
