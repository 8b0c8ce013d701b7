package commands

import (
	"errors"

	"sellerops/internal/core/domain/model/inventory"
	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

type CreateProductCommand struct { //nolint:recvcheck //using for validation
	sku     kernel.ID
	details inventory.ProductDetails

	guard guard.ConstructorGuard
}

// NewCreateProductCommand checks the sku only; the aggregate validates the details.
func NewCreateProductCommand(sku string, details inventory.ProductDetails) (CreateProductCommand, error) {
	id, err := parseID("sku", sku)
	if err != nil {
		return CreateProductCommand{}, err
	}

	return CreateProductCommand{
		sku:     id,
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) SKU() kernel.ID                    { return c.sku }
func (c CreateProductCommand) Details() inventory.ProductDetails { return c.details }
