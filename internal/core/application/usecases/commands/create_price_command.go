package commands

import (
	"errors"
	"strings"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/pricing"
	"sellerops/internal/pkg/errs"
	"sellerops/internal/pkg/guard"
)

var ErrCreatePriceCommandIsNotConstructed = errors.New(
	"CreatePriceCommand must be created via NewCreatePriceCommand constructor",
)

type CreatePriceCommand struct { //nolint:recvcheck //using for validation
	priceID kernel.ID
	sku     string
	amounts pricing.Amounts

	guard guard.ConstructorGuard
}

// NewCreatePriceCommand checks identifiers only; amount ranges are enforced by the aggregate.
func NewCreatePriceCommand(priceID, sku string, amounts pricing.Amounts) (CreatePriceCommand, error) {
	id, idErr := parseID("price_id", priceID)

	sku = strings.TrimSpace(sku)
	var skuErr error
	if sku == "" {
		skuErr = errs.NewValueIsRequiredError("sku")
	}

	if err := errors.Join(idErr, skuErr); err != nil {
		return CreatePriceCommand{}, err
	}

	return CreatePriceCommand{
		priceID: id,
		sku:     sku,
		amounts: amounts,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreatePriceCommand) Validate() error {
	return c.guard.Validate(ErrCreatePriceCommandIsNotConstructed)
}

func (c CreatePriceCommand) PriceID() kernel.ID       { return c.priceID }
func (c CreatePriceCommand) SKU() string              { return c.sku }
func (c CreatePriceCommand) Amounts() pricing.Amounts { return c.amounts }
