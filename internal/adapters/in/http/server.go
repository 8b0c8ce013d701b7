package http

import (
	"net/http"

	"sellerops/internal/core/application/usecases/commands"
	"sellerops/internal/core/application/usecases/queries"
	"sellerops/internal/core/domain/model/order"
	"sellerops/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases the HTTP API exposes.
type Handlers struct {
	CreateOrder    commands.CreateOrderCommandHandler
	CancelOrder    commands.CancelOrderCommandHandler
	DispatchOrder  commands.DispatchOrderCommandHandler
	CreateShipment commands.CreateShipmentCommandHandler
	MoveShipment   commands.MoveShipmentCommandHandler
	GenerateLabel  commands.GenerateLabelCommandHandler

	CreateReturn       commands.CreateReturnCommandHandler
	ChangeReturnStatus commands.ChangeReturnStatusCommandHandler
	CreateReplacement  commands.CreateReplacementCommandHandler
	MoveReplacement    commands.MoveReplacementCommandHandler
	CreateRefund       commands.CreateRefundCommandHandler
	ChangeRefundStatus commands.ChangeRefundStatusCommandHandler

	CreatePrice        commands.CreatePriceCommandHandler
	PatchPrice         commands.PatchPriceCommandHandler
	UpdateSellingPrice commands.UpdateSellingPriceCommandHandler

	GenerateReport        commands.GenerateReportCommandHandler
	ChangeReportStatus    commands.ChangeReportStatusCommandHandler
	CreateScheduledReport commands.CreateScheduledReportCommandHandler
	RunScheduledReport    commands.RunScheduledReportCommandHandler
	SetScheduleActivation commands.SetScheduleActivationCommandHandler
	RecordReportMetrics   commands.RecordReportMetricsCommandHandler

	CreateProduct        commands.CreateProductCommandHandler
	CreateStock          commands.CreateStockCommandHandler
	UpdateStock          commands.UpdateStockCommandHandler
	CreateListing        commands.CreateListingCommandHandler
	CreateCourierPartner commands.CreateCourierPartnerCommandHandler
	CreatePricingRule    commands.CreatePricingRuleCommandHandler
	CreateSpecialPrice   commands.CreateSpecialPriceCommandHandler
	SetActivation        commands.SetActivationCommandHandler

	TrackOrder       queries.TrackOrderQueryHandler
	TrackShipment    queries.TrackShipmentQueryHandler
	DownloadReport   queries.DownloadReportQueryHandler
	GetProfitMargin  queries.GetProfitMarginQueryHandler
	GetStock         queries.GetStockQueryHandler
	GetReportMetrics queries.GetReportMetricsQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	log      *logger.Logger
}

func NewServer(handlers Handlers, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	return &Server{
		handlers: handlers,
		log:      log.With("component", "http"),
	}
}

// bind decodes the body and runs the struct validation tags.
func (s *Server) bind(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return err
	}
	return ctx.Validate(body)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body CreateOrderRequest
	if err := s.bind(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	items := make([]commands.OrderItemInput, 0, len(body.Items))
	for _, item := range body.Items {
		items = append(items, commands.OrderItemInput{
			SKU:         item.SKU,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   *item.UnitPrice,
			TotalPrice:  item.TotalPrice,
			HSNCode:     item.HSNCode,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(commands.OrderInput{
		OrderID:         body.OrderID,
		OrderDate:       body.OrderDate,
		CustomerName:    body.CustomerName,
		CustomerEmail:   body.CustomerEmail,
		CustomerPhone:   body.CustomerPhone,
		ShippingAddress: body.ShippingAddress,
		BillingAddress:  body.BillingAddress,
		PaymentMethod:   body.PaymentMethod,
		TotalAmount:     body.TotalAmount,
		Items:           items,
	})
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, StatusResponse{ID: cmd.OrderID().String(), Status: order.Approved.String()})
}

// CancelOrder handles POST /api/v1/orders/{id}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, id string) error {
	var body CancelOrderRequest
	if err := s.bind(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(id, body.Reason, body.CancelledBy, body.RefundAmount)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CancelOrderResponse{
		OrderID:        cmd.OrderID().String(),
		CancellationID: result.CancellationID,
		Status:         result.Status.String(),
	})
}

// DispatchOrder handles POST /api/v1/orders/{id}/dispatch.
func (s *Server) DispatchOrder(ctx echo.Context, id string) error {
	cmd, err := commands.NewDispatchOrderCommand(id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	status, err := s.handlers.DispatchOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatusResponse{ID: cmd.OrderID().String(), Status: status.String()})
}

// TrackOrder handles GET /api/v1/orders/{id}/track.
func (s *Server) TrackOrder(ctx echo.Context, id string) error {
	query, err := queries.NewTrackOrderQuery(id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	tracking, err := s.handlers.TrackOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderTrackingResponse{
		OrderID:     tracking.OrderID,
		Status:      tracking.Status,
		OrderDate:   tracking.OrderDate,
		LastUpdated: tracking.LastUpdated,
	})
}
