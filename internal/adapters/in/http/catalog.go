package http

import (
	"encoding/json"
	"net/http"

	"sellerops/internal/core/application/usecases/commands"
	"sellerops/internal/core/application/usecases/queries"
	"sellerops/internal/core/domain/model/inventory"
	"sellerops/internal/core/domain/model/pricing"
	"sellerops/internal/core/domain/model/report"
	"sellerops/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

func newRecordResponse(result commands.RecordResult) RecordResponse {
	return RecordResponse{ID: result.ID, Status: result.Status, IsActive: result.IsActive}
}

func newStockResponse(result commands.StockResult) StockResponse {
	return StockResponse{
		SKU:               result.SKU,
		AvailableQuantity: result.Available,
		ReservedQuantity:  result.Reserved,
		DamagedQuantity:   result.Damaged,
		TotalQuantity:     result.Total,
		WarehouseLocation: result.WarehouseLocation,
		ProcurementSLA:    result.ProcurementSLA,
		LastUpdated:       result.LastUpdated,
	}
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body CreateProductRequest
	if err := s.bind(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCreateProductCommand(body.SKU, inventory.ProductDetails{
		FSN:           body.FSN,
		Name:          body.ProductName,
		Description:   body.Description,
		Brand:         body.Brand,
		Category:      body.Category,
		Subcategory:   body.Subcategory,
		MRP:           *body.MRP,
		HSNCode:       body.HSNCode,
		TaxPercentage: valueOrZero(body.TaxPercentage),
	})
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newRecordResponse(result))
}

// CreateStock handles POST /api/v1/inventory.
func (s *Server) CreateStock(ctx echo.Context) error {
	var body CreateStockRequest
	if err := s.bind(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCreateStockCommand(body.SKU, inventory.Quantities{
		Available: body.AvailableQuantity,
		Reserved:  body.ReservedQuantity,
		Damaged:   body.DamagedQuantity,
	}, body.WarehouseLocation, body.ProcurementSLA)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.handlers.CreateStock.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newStockResponse(result))
}

// UpdateStock handles PATCH /api/v1/inventory/{id}.
func (s *Server) UpdateStock(ctx echo.Context, id string) error {
	var body UpdateStockRequest
	if err := s.bind(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateStockCommand(id, inventory.StockPatch{
		Available: body.AvailableQuantity,
		Reserved:  body.ReservedQuantity,
		Damaged:   body.DamagedQuantity,
	})
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.handlers.UpdateStock.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newStockResponse(result))
}

// GetStock handles GET /api/v1/inventory/{id}.
func (s *Server) GetStock(ctx echo.Context, id string) error {
	query, err := queries.NewGetStockQuery(id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	stock, err := s.handlers.GetStock.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StockResponse{
		SKU:               stock.SKU,
		ProductName:       stock.ProductName,
		AvailableQuantity: stock.AvailableQuantity,
		ReservedQuantity:  stock.ReservedQuantity,
		DamagedQuantity:   stock.DamagedQuantity,
		TotalQuantity:     stock.TotalQuantity,
		WarehouseLocation: stock.WarehouseLocation,
		ProcurementSLA:    stock.ProcurementSLA,
		LastUpdated:       stock.LastUpdated,
	})
}

// CreateListing handles POST /api/v1/listings.
func (s *Server) CreateListing(ctx echo.Context) error {
	var body CreateListingRequest
	if err := s.bind(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCreateListingCommand(body.ListingID, body.SKU, inventory.ListingTerms{
		Marketplace:     body.Marketplace,
		FulfillmentType: body.FulfillmentType,
		ShippingCharges: valueOrZero(body.ShippingCharges),
		CODAvailable:    body.CODAvailable,
	})
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.handlers.CreateListing.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newRecordResponse(result))
}

// CreateCourierPartner handles POST /api/v1/courier-partners.
func (s *Server) CreateCourierPartner(ctx echo.Context) error {
	var body CreateCourierPartnerRequest
	if err := s.bind(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCreateCourierPartnerCommand(body.PartnerCode, shipment.CourierContact{
		Name:          body.PartnerName,
		ContactNumber: body.ContactNumber,
		Email:         body.Email,
		ServiceType:   body.ServiceType,
	})
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.handlers.CreateCourierPartner.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newRecordResponse(result))
}

// CreatePricingRule handles POST /api/v1/pricing-rules.
func (s *Server) CreatePricingRule(ctx echo.Context) error {
	var body CreatePricingRuleRequest
	if err := s.bind(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCreatePricingRuleCommand(body.RuleID, body.SKU, body.RuleType, pricing.RuleTerms{
		Name:       body.RuleName,
		Value:      *body.Value,
		Percentage: body.Percentage,
		Period:     pricing.Period{Start: body.StartDate, End: body.EndDate},
	})
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.handlers.CreatePricingRule.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newRecordResponse(result))
}

// CreateSpecialPrice handles POST /api/v1/special-prices.
func (s *Server) CreateSpecialPrice(ctx echo.Context) error {
	var body CreateSpecialPriceRequest
	if err := s.bind(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCreateSpecialPriceCommand(
		body.SpecialPriceID,
		body.SKU,
		*body.SpecialPrice,
		body.PromotionName,
		pricing.Period{Start: body.StartDate, End: body.EndDate},
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.handlers.CreateSpecialPrice.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newRecordResponse(result))
}

func (s *Server) ActivateProduct(ctx echo.Context, id string) error {
	return s.setActivation(ctx, commands.ProductTarget, id, true)
}

func (s *Server) DeactivateProduct(ctx echo.Context, id string) error {
	return s.setActivation(ctx, commands.ProductTarget, id, false)
}

func (s *Server) ActivateListing(ctx echo.Context, id string) error {
	return s.setActivation(ctx, commands.ListingTarget, id, true)
}

func (s *Server) DeactivateListing(ctx echo.Context, id string) error {
	return s.setActivation(ctx, commands.ListingTarget, id, false)
}

func (s *Server) ActivateCourierPartner(ctx echo.Context, id string) error {
	return s.setActivation(ctx, commands.CourierPartnerTarget, id, true)
}

func (s *Server) DeactivateCourierPartner(ctx echo.Context, id string) error {
	return s.setActivation(ctx, commands.CourierPartnerTarget, id, false)
}

func (s *Server) ActivatePricingRule(ctx echo.Context, id string) error {
	return s.setActivation(ctx, commands.PricingRuleTarget, id, true)
}

func (s *Server) DeactivatePricingRule(ctx echo.Context, id string) error {
	return s.setActivation(ctx, commands.PricingRuleTarget, id, false)
}

func (s *Server) ActivateSpecialPrice(ctx echo.Context, id string) error {
	return s.setActivation(ctx, commands.SpecialPriceTarget, id, true)
}

func (s *Server) DeactivateSpecialPrice(ctx echo.Context, id string) error {
	return s.setActivation(ctx, commands.SpecialPriceTarget, id, false)
}

func (s *Server) setActivation(ctx echo.Context, target commands.ActivationTarget, id string, active bool) error {
	cmd, err := commands.NewSetActivationCommand(target, id, active)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.handlers.SetActivation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newRecordResponse(result))
}

// RecordReportMetrics handles POST /api/v1/reports/{id}/metrics.
func (s *Server) RecordReportMetrics(ctx echo.Context, id string) error {
	var body RecordReportMetricsRequest
	if err := s.bind(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewRecordReportMetricsCommand(id, report.MetricsValues{
		TotalRecords:   body.TotalRecords,
		ProcessingTime: valueOrZero(body.ProcessingTime),
		DataRangeStart: body.DataRangeStart,
		DataRangeEnd:   body.DataRangeEnd,
		FiltersApplied: body.FiltersApplied,
	})
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.RecordReportMetrics.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return s.respondReportMetrics(ctx, id, http.StatusCreated)
}

// GetReportMetrics handles GET /api/v1/reports/{id}/metrics.
func (s *Server) GetReportMetrics(ctx echo.Context, id string) error {
	return s.respondReportMetrics(ctx, id, http.StatusOK)
}

func (s *Server) respondReportMetrics(ctx echo.Context, id string, status int) error {
	query, err := queries.NewGetReportMetricsQuery(id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	metrics, err := s.handlers.GetReportMetrics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	filters := json.RawMessage("{}")
	if metrics.FiltersApplied != "" {
		filters = json.RawMessage(metrics.FiltersApplied)
	}

	return ctx.JSON(status, ReportMetricsResponse{
		ReportID:       metrics.ReportID,
		TotalRecords:   metrics.TotalRecords,
		ProcessingTime: metrics.ProcessingTime,
		DataRangeStart: metrics.DataRangeStart,
		DataRangeEnd:   metrics.DataRangeEnd,
		FiltersApplied: filters,
		CreatedAt:      metrics.CreatedAt,
	})
}
