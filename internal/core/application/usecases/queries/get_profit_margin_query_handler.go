package queries

import (
	"context"

	"sellerops/internal/core/domain/model/pricing"
	"sellerops/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetProfitMarginQueryHandler struct {
	db *gorm.DB
}

func NewGetProfitMarginQueryHandler(db *gorm.DB) GetProfitMarginQueryHandler {
	return GetProfitMarginQueryHandler{db: db}
}

func (h GetProfitMarginQueryHandler) Handle(
	ctx context.Context,
	query GetProfitMarginQuery,
) (GetProfitMarginQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProfitMarginQueryResponse{}, err
	}

	var response GetProfitMarginQueryResponse
	result := h.db.WithContext(ctx).Raw(`
		SELECT
			price_id,
			sku,
			selling_price,
			cost_price,
			commission_percentage,
			shipping_fee
		FROM prices
		WHERE price_id = ?
	`, query.PriceID().String()).Scan(&response)
	if result.Error != nil {
		return GetProfitMarginQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetProfitMarginQueryResponse{}, errs.NewObjectNotFoundError("price", query.PriceID().String())
	}

	response.ProfitMargin = pricing.ProfitMargin(
		response.SellingPrice,
		response.CostPrice,
		response.CommissionPercentage,
		response.ShippingFee,
	)
	return response, nil
}
