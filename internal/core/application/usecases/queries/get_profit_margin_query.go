package queries

import (
	"errors"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetProfitMarginQueryIsNotConstructed = errors.New(
	"GetProfitMarginQuery must be created via NewGetProfitMarginQuery constructor",
)

type GetProfitMarginQuery struct {
	priceID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetProfitMarginQuery(priceID string) (GetProfitMarginQuery, error) {
	id, err := parseID("price_id", priceID)
	if err != nil {
		return GetProfitMarginQuery{}, err
	}
	return GetProfitMarginQuery{priceID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProfitMarginQuery) Validate() error {
	return q.guard.Validate(ErrGetProfitMarginQueryIsNotConstructed)
}

func (q GetProfitMarginQuery) PriceID() kernel.ID {
	return q.priceID
}

// GetProfitMarginQueryResponse is the margin together with the fields it was computed from.
type GetProfitMarginQueryResponse struct {
	PriceID              string
	SKU                  string
	SellingPrice         decimal.Decimal
	CostPrice            decimal.Decimal
	CommissionPercentage decimal.Decimal
	ShippingFee          decimal.Decimal
	ProfitMargin         decimal.Decimal
}
