package commands

import (
	"errors"

	"sellerops/internal/core/domain/model/inventory"
	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/guard"
)

var ErrCreateStockCommandIsNotConstructed = errors.New(
	"CreateStockCommand must be created via NewCreateStockCommand constructor",
)

type CreateStockCommand struct { //nolint:recvcheck //using for validation
	sku               kernel.ID
	quantities        inventory.Quantities
	warehouseLocation string
	procurementSLA    int

	guard guard.ConstructorGuard
}

func NewCreateStockCommand(
	sku string,
	quantities inventory.Quantities,
	warehouseLocation string,
	procurementSLA int,
) (CreateStockCommand, error) {
	id, err := parseID("sku", sku)
	if err != nil {
		return CreateStockCommand{}, err
	}

	return CreateStockCommand{
		sku:               id,
		quantities:        quantities,
		warehouseLocation: warehouseLocation,
		procurementSLA:    procurementSLA,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

func (c CreateStockCommand) Validate() error {
	return c.guard.Validate(ErrCreateStockCommandIsNotConstructed)
}

func (c CreateStockCommand) SKU() kernel.ID                   { return c.sku }
func (c CreateStockCommand) Quantities() inventory.Quantities { return c.quantities }
func (c CreateStockCommand) WarehouseLocation() string        { return c.warehouseLocation }
func (c CreateStockCommand) ProcurementSLA() int              { return c.procurementSLA }
