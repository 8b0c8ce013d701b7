package commands

import (
	"errors"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/errs"
	"sellerops/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateSellingPriceCommandIsNotConstructed = errors.New(
	"UpdateSellingPriceCommand must be created via NewUpdateSellingPriceCommand constructor",
)

type UpdateSellingPriceCommand struct { //nolint:recvcheck //using for validation
	priceID      kernel.ID
	sellingPrice decimal.Decimal

	guard guard.ConstructorGuard
}

func NewUpdateSellingPriceCommand(priceID string, sellingPrice *decimal.Decimal) (UpdateSellingPriceCommand, error) {
	id, idErr := parseID("price_id", priceID)

	var priceErr error
	if sellingPrice == nil {
		priceErr = errs.NewValueIsRequiredError("selling_price")
	}

	if err := errors.Join(idErr, priceErr); err != nil {
		return UpdateSellingPriceCommand{}, err
	}

	return UpdateSellingPriceCommand{
		priceID:      id,
		sellingPrice: *sellingPrice,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateSellingPriceCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSellingPriceCommandIsNotConstructed)
}

func (c UpdateSellingPriceCommand) PriceID() kernel.ID            { return c.priceID }
func (c UpdateSellingPriceCommand) SellingPrice() decimal.Decimal { return c.sellingPrice }
