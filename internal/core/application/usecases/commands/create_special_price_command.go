package commands

import (
	"errors"
	"strings"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/pricing"
	"sellerops/internal/pkg/errs"
	"sellerops/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateSpecialPriceCommandIsNotConstructed = errors.New(
	"CreateSpecialPriceCommand must be created via NewCreateSpecialPriceCommand constructor",
)

type CreateSpecialPriceCommand struct { //nolint:recvcheck //using for validation
	specialPriceID kernel.ID
	sku            string
	price          decimal.Decimal
	promotionName  string
	period         pricing.Period

	guard guard.ConstructorGuard
}

func NewCreateSpecialPriceCommand(
	specialPriceID, sku string,
	price decimal.Decimal,
	promotionName string,
	period pricing.Period,
) (CreateSpecialPriceCommand, error) {
	id, idErr := parseID("special_price_id", specialPriceID)

	sku = strings.TrimSpace(sku)
	var skuErr error
	if sku == "" {
		skuErr = errs.NewValueIsRequiredError("sku")
	}

	if err := errors.Join(idErr, skuErr); err != nil {
		return CreateSpecialPriceCommand{}, err
	}

	return CreateSpecialPriceCommand{
		specialPriceID: id,
		sku:            sku,
		price:          price,
		promotionName:  promotionName,
		period:         period,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c CreateSpecialPriceCommand) Validate() error {
	return c.guard.Validate(ErrCreateSpecialPriceCommandIsNotConstructed)
}

func (c CreateSpecialPriceCommand) SpecialPriceID() kernel.ID { return c.specialPriceID }
func (c CreateSpecialPriceCommand) SKU() string               { return c.sku }
func (c CreateSpecialPriceCommand) Price() decimal.Decimal    { return c.price }
func (c CreateSpecialPriceCommand) PromotionName() string     { return c.promotionName }
func (c CreateSpecialPriceCommand) Period() pricing.Period    { return c.period }
