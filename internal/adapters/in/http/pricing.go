package http

import (
	"net/http"

	"sellerops/internal/core/application/usecases/commands"
	"sellerops/internal/core/application/usecases/queries"
	"sellerops/internal/core/domain/model/pricing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func newPriceResponse(result commands.PriceResult) PriceResponse {
	return PriceResponse{
		PriceID:            result.PriceID,
		SKU:                result.SKU,
		ListingPrice:       result.ListingPrice,
		SellingPrice:       result.SellingPrice,
		DiscountPercentage: result.DiscountPercentage,
		ProfitMargin:       result.ProfitMargin,
	}
}

// CreatePrice handles POST /api/v1/prices.
func (s *Server) CreatePrice(ctx echo.Context) error {
	var body CreatePriceRequest
	if err := s.bind(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCreatePriceCommand(body.PriceID, body.SKU, pricing.Amounts{
		ListingPrice:         *body.ListingPrice,
		SellingPrice:         *body.SellingPrice,
		CostPrice:            valueOrZero(body.CostPrice),
		CommissionPercentage: valueOrZero(body.CommissionPercentage),
		ShippingFee:          valueOrZero(body.ShippingFee),
	})
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.handlers.CreatePrice.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newPriceResponse(result))
}

// PatchPrice handles PATCH /api/v1/prices/{id}.
func (s *Server) PatchPrice(ctx echo.Context, id string) error {
	var body PatchPriceRequest
	if err := s.bind(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewPatchPriceCommand(id, pricing.PricePatch{
		ListingPrice:         body.ListingPrice,
		SellingPrice:         body.SellingPrice,
		DiscountPercentage:   body.DiscountPercentage,
		CostPrice:            body.CostPrice,
		CommissionPercentage: body.CommissionPercentage,
		ShippingFee:          body.ShippingFee,
	})
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.handlers.PatchPrice.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newPriceResponse(result))
}

// UpdateSellingPrice handles POST /api/v1/prices/{id}/update-selling-price.
func (s *Server) UpdateSellingPrice(ctx echo.Context, id string) error {
	var body UpdateSellingPriceRequest
	if err := s.bind(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateSellingPriceCommand(id, body.SellingPrice)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.handlers.UpdateSellingPrice.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newPriceResponse(result))
}

// GetProfitMargin handles GET /api/v1/prices/{id}/profit-margin.
func (s *Server) GetProfitMargin(ctx echo.Context, id string) error {
	query, err := queries.NewGetProfitMarginQuery(id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	margin, err := s.handlers.GetProfitMargin.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ProfitMarginResponse{
		PriceID:              margin.PriceID,
		SKU:                  margin.SKU,
		SellingPrice:         margin.SellingPrice,
		CostPrice:            margin.CostPrice,
		CommissionPercentage: margin.CommissionPercentage,
		ShippingFee:          margin.ShippingFee,
		ProfitMargin:         margin.ProfitMargin,
	})
}
