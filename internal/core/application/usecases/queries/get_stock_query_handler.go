package queries

import (
	"context"

	"sellerops/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetStockQueryHandler struct {
	db *gorm.DB
}

func NewGetStockQueryHandler(db *gorm.DB) GetStockQueryHandler {
	return GetStockQueryHandler{db: db}
}

func (h GetStockQueryHandler) Handle(ctx context.Context, query GetStockQuery) (GetStockQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStockQueryResponse{}, err
	}

	var response GetStockQueryResponse
	result := h.db.WithContext(ctx).Raw(`
		SELECT
			i.sku,
			p.product_name,
			p.is_active,
			i.available_quantity,
			i.reserved_quantity,
			i.damaged_quantity,
			i.warehouse_location,
			i.procurement_sla,
			i.last_updated
		FROM inventory i
		JOIN products p ON p.sku = i.sku
		WHERE i.sku = ?
	`, query.SKU().String()).Scan(&response)
	if result.Error != nil {
		return GetStockQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetStockQueryResponse{}, errs.NewObjectNotFoundError("inventory", query.SKU().String())
	}

	response.TotalQuantity = response.AvailableQuantity + response.ReservedQuantity + response.DamagedQuantity
	return response, nil
}
