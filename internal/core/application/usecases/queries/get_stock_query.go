package queries

import (
	"errors"
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/guard"
)

var ErrGetStockQueryIsNotConstructed = errors.New("GetStockQuery must be created via NewGetStockQuery constructor")

type GetStockQuery struct {
	sku kernel.ID

	guard guard.ConstructorGuard
}

func NewGetStockQuery(sku string) (GetStockQuery, error) {
	id, err := parseID("sku", sku)
	if err != nil {
		return GetStockQuery{}, err
	}
	return GetStockQuery{sku: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStockQuery) Validate() error {
	return q.guard.Validate(ErrGetStockQueryIsNotConstructed)
}

func (q GetStockQuery) SKU() kernel.ID {
	return q.sku
}

// GetStockQueryResponse is the stock record with its derived total.
type GetStockQueryResponse struct {
	SKU               string
	ProductName       string
	IsActive          bool
	AvailableQuantity int
	ReservedQuantity  int
	DamagedQuantity   int
	TotalQuantity     int
	WarehouseLocation string
	ProcurementSLA    int
	LastUpdated       time.Time
}
