package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

const BaseURL = "/api/v1"

// ServerInterface lists the operations of openapi.yaml.
type ServerInterface interface {
	CreateOrder(ctx echo.Context) error
	CancelOrder(ctx echo.Context, id string) error
	DispatchOrder(ctx echo.Context, id string) error
	TrackOrder(ctx echo.Context, id string) error

	CreateShipment(ctx echo.Context) error
	DispatchShipment(ctx echo.Context, id string) error
	DeliverShipment(ctx echo.Context, id string) error
	TrackShipment(ctx echo.Context, id string) error
	TrackShipmentByTrackingNumber(ctx echo.Context, trackingNumber string) error
	GenerateLabel(ctx echo.Context, id string) error

	CreateReturn(ctx echo.Context) error
	ApproveReturn(ctx echo.Context, id string) error
	RejectReturn(ctx echo.Context, id string) error
	CompleteReturn(ctx echo.Context, id string) error

	CreateReplacement(ctx echo.Context) error
	DispatchReplacement(ctx echo.Context, id string) error
	CompleteReplacement(ctx echo.Context, id string) error

	CreateRefund(ctx echo.Context) error
	ProcessRefund(ctx echo.Context, id string) error
	CompleteRefund(ctx echo.Context, id string) error

	CreatePrice(ctx echo.Context) error
	PatchPrice(ctx echo.Context, id string) error
	UpdateSellingPrice(ctx echo.Context, id string) error
	GetProfitMargin(ctx echo.Context, id string) error

	GenerateReport(ctx echo.Context) error
	RegenerateReport(ctx echo.Context, id string) error
	CompleteReport(ctx echo.Context, id string) error
	FailReport(ctx echo.Context, id string) error
	DownloadReport(ctx echo.Context, id string) error

	CreateScheduledReport(ctx echo.Context) error
	RunScheduledReport(ctx echo.Context, id string) error
	ActivateScheduledReport(ctx echo.Context, id string) error
	DeactivateScheduledReport(ctx echo.Context, id string) error
	RecordReportMetrics(ctx echo.Context, id string) error
	GetReportMetrics(ctx echo.Context, id string) error

	CreateProduct(ctx echo.Context) error
	ActivateProduct(ctx echo.Context, id string) error
	DeactivateProduct(ctx echo.Context, id string) error
	CreateStock(ctx echo.Context) error
	UpdateStock(ctx echo.Context, id string) error
	GetStock(ctx echo.Context, id string) error
	CreateListing(ctx echo.Context) error
	ActivateListing(ctx echo.Context, id string) error
	DeactivateListing(ctx echo.Context, id string) error

	CreateCourierPartner(ctx echo.Context) error
	ActivateCourierPartner(ctx echo.Context, id string) error
	DeactivateCourierPartner(ctx echo.Context, id string) error

	CreatePricingRule(ctx echo.Context) error
	ActivatePricingRule(ctx echo.Context, id string) error
	DeactivatePricingRule(ctx echo.Context, id string) error
	CreateSpecialPrice(ctx echo.Context) error
	ActivateSpecialPrice(ctx echo.Context, id string) error
	DeactivateSpecialPrice(ctx echo.Context, id string) error
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type pathHandler func(ctx echo.Context, value string) error

// withPathParam binds a required simple-style path parameter before calling the operation.
func withPathParam(name string, handler pathHandler) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var value string
		err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value,
			runtime.BindStyledParameterOptions{
				ParamLocation: runtime.ParamLocationPath,
				Explode:       false,
				Required:      true,
			})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
		}
		return handler(ctx, value)
	}
}

// RegisterHandlers mounts every operation under BaseURL.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	byID := func(h pathHandler) echo.HandlerFunc { return withPathParam("id", h) }

	router.POST(BaseURL+"/orders", si.CreateOrder)
	router.POST(BaseURL+"/orders/:id/cancel", byID(si.CancelOrder))
	router.POST(BaseURL+"/orders/:id/dispatch", byID(si.DispatchOrder))
	router.GET(BaseURL+"/orders/:id/track", byID(si.TrackOrder))

	router.POST(BaseURL+"/shipments", si.CreateShipment)
	router.POST(BaseURL+"/shipments/:id/dispatch", byID(si.DispatchShipment))
	router.POST(BaseURL+"/shipments/:id/deliver", byID(si.DeliverShipment))
	router.GET(BaseURL+"/shipments/:id/track", byID(si.TrackShipment))
	router.GET(BaseURL+"/shipments/tracking/:trackingNumber",
		withPathParam("trackingNumber", si.TrackShipmentByTrackingNumber))
	router.POST(BaseURL+"/shipments/:id/label", byID(si.GenerateLabel))

	router.POST(BaseURL+"/returns", si.CreateReturn)
	router.POST(BaseURL+"/returns/:id/approve", byID(si.ApproveReturn))
	router.POST(BaseURL+"/returns/:id/reject", byID(si.RejectReturn))
	router.POST(BaseURL+"/returns/:id/complete", byID(si.CompleteReturn))

	router.POST(BaseURL+"/replacements", si.CreateReplacement)
	router.POST(BaseURL+"/replacements/:id/dispatch", byID(si.DispatchReplacement))
	router.POST(BaseURL+"/replacements/:id/complete", byID(si.CompleteReplacement))

	router.POST(BaseURL+"/refunds", si.CreateRefund)
	router.POST(BaseURL+"/refunds/:id/process", byID(si.ProcessRefund))
	router.POST(BaseURL+"/refunds/:id/complete", byID(si.CompleteRefund))

	router.POST(BaseURL+"/prices", si.CreatePrice)
	router.PATCH(BaseURL+"/prices/:id", byID(si.PatchPrice))
	router.POST(BaseURL+"/prices/:id/update-selling-price", byID(si.UpdateSellingPrice))
	router.GET(BaseURL+"/prices/:id/profit-margin", byID(si.GetProfitMargin))

	router.POST(BaseURL+"/reports", si.GenerateReport)
	router.POST(BaseURL+"/reports/:id/regenerate", byID(si.RegenerateReport))
	router.POST(BaseURL+"/reports/:id/complete", byID(si.CompleteReport))
	router.POST(BaseURL+"/reports/:id/fail", byID(si.FailReport))
	router.GET(BaseURL+"/reports/:id/download", byID(si.DownloadReport))
	router.POST(BaseURL+"/reports/:id/metrics", byID(si.RecordReportMetrics))
	router.GET(BaseURL+"/reports/:id/metrics", byID(si.GetReportMetrics))

	router.POST(BaseURL+"/scheduled-reports", si.CreateScheduledReport)
	router.POST(BaseURL+"/scheduled-reports/:id/run-now", byID(si.RunScheduledReport))
	router.POST(BaseURL+"/scheduled-reports/:id/activate", byID(si.ActivateScheduledReport))
	router.POST(BaseURL+"/scheduled-reports/:id/deactivate", byID(si.DeactivateScheduledReport))

	router.POST(BaseURL+"/products", si.CreateProduct)
	router.POST(BaseURL+"/products/:id/activate", byID(si.ActivateProduct))
	router.POST(BaseURL+"/products/:id/deactivate", byID(si.DeactivateProduct))

	router.POST(BaseURL+"/inventory", si.CreateStock)
	router.PATCH(BaseURL+"/inventory/:id", byID(si.UpdateStock))
	router.GET(BaseURL+"/inventory/:id", byID(si.GetStock))

	router.POST(BaseURL+"/listings", si.CreateListing)
	router.POST(BaseURL+"/listings/:id/activate", byID(si.ActivateListing))
	router.POST(BaseURL+"/listings/:id/deactivate", byID(si.DeactivateListing))

	router.POST(BaseURL+"/courier-partners", si.CreateCourierPartner)
	router.POST(BaseURL+"/courier-partners/:id/activate", byID(si.ActivateCourierPartner))
	router.POST(BaseURL+"/courier-partners/:id/deactivate", byID(si.DeactivateCourierPartner))

	router.POST(BaseURL+"/pricing-rules", si.CreatePricingRule)
	router.POST(BaseURL+"/pricing-rules/:id/activate", byID(si.ActivatePricingRule))
	router.POST(BaseURL+"/pricing-rules/:id/deactivate", byID(si.DeactivatePricingRule))

	router.POST(BaseURL+"/special-prices", si.CreateSpecialPrice)
	router.POST(BaseURL+"/special-prices/:id/activate", byID(si.ActivateSpecialPrice))
	router.POST(BaseURL+"/special-prices/:id/deactivate", byID(si.DeactivateSpecialPrice))
}
