package http

import (
	"net/http"

	"sellerops/internal/core/application/usecases/commands"
	"sellerops/internal/core/application/usecases/queries"
	"sellerops/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var body CreateShipmentRequest
	if err := s.bind(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCreateShipmentCommand(commands.ShipmentInput{
		ShipmentID:           body.ShipmentID,
		OrderID:              body.OrderID,
		TrackingNumber:       body.TrackingNumber,
		CourierPartner:       body.CourierPartner,
		ShipmentDate:         body.ShipmentDate,
		ExpectedDeliveryDate: body.ExpectedDeliveryDate,
		PickupAddress:        body.PickupAddress,
		DeliveryAddress:      body.DeliveryAddress,
		Weight:               *body.Weight,
		Dimensions:           body.Dimensions,
		ShippingCharges:      *body.ShippingCharges,
	})
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.CreateShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, StatusResponse{
		ID:     cmd.ShipmentID().String(),
		Status: shipment.Created.String(),
	})
}

// DispatchShipment handles POST /api/v1/shipments/{id}/dispatch.
func (s *Server) DispatchShipment(ctx echo.Context, id string) error {
	return s.moveShipment(ctx, id, commands.NewDispatchShipmentCommand)
}

// DeliverShipment handles POST /api/v1/shipments/{id}/deliver.
func (s *Server) DeliverShipment(ctx echo.Context, id string) error {
	return s.moveShipment(ctx, id, commands.NewDeliverShipmentCommand)
}

func (s *Server) moveShipment(
	ctx echo.Context,
	id string,
	newCommand func(shipmentID, location string) (commands.MoveShipmentCommand, error),
) error {
	var body LocationRequest
	if err := s.bind(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := newCommand(id, body.Location)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.handlers.MoveShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ShipmentMoveResponse{
		ShipmentID: cmd.ShipmentID().String(),
		Status:     result.Status.String(),
		Event: TrackingEvent{
			EventDate:   result.Event.EventDate(),
			Location:    result.Event.Location(),
			Description: result.Event.Description(),
			StatusCode:  result.Event.StatusCode(),
		},
		ActualDeliveryDate: result.ActualDeliveryDate,
	})
}

// TrackShipment handles GET /api/v1/shipments/{id}/track.
func (s *Server) TrackShipment(ctx echo.Context, id string) error {
	query, err := queries.NewTrackShipmentQuery(id)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return s.trackShipment(ctx, query)
}

// TrackShipmentByTrackingNumber handles GET /api/v1/shipments/tracking/{trackingNumber}.
func (s *Server) TrackShipmentByTrackingNumber(ctx echo.Context, trackingNumber string) error {
	query, err := queries.NewTrackShipmentByTrackingNumberQuery(trackingNumber)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return s.trackShipment(ctx, query)
}

func (s *Server) trackShipment(ctx echo.Context, query queries.TrackShipmentQuery) error {
	tracking, err := s.handlers.TrackShipment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	events := make([]TrackingEvent, len(tracking.Events))
	for i, event := range tracking.Events {
		events[i] = TrackingEvent{
			EventDate:   event.EventDate,
			Location:    event.Location,
			Description: event.Description,
			StatusCode:  event.StatusCode,
		}
	}

	return ctx.JSON(http.StatusOK, ShipmentTrackingResponse{
		ShipmentID:           tracking.ShipmentID,
		OrderID:              tracking.OrderID,
		TrackingNumber:       tracking.TrackingNumber,
		CourierPartner:       tracking.CourierPartner,
		Status:               tracking.Status,
		Weight:               tracking.Weight,
		ExpectedDeliveryDate: tracking.ExpectedDeliveryDate,
		ActualDeliveryDate:   tracking.ActualDeliveryDate,
		Events:               events,
	})
}

// GenerateLabel handles POST /api/v1/shipments/{id}/label.
func (s *Server) GenerateLabel(ctx echo.Context, id string) error {
	var body GenerateLabelRequest
	if err := s.bind(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewGenerateLabelCommand(id, body.LabelURL, body.Format, body.Barcode)
	if err != nil {
		return s.respondError(ctx, err)
	}

	label, err := s.handlers.GenerateLabel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, LabelResponse{
		ShipmentID:  cmd.ShipmentID().String(),
		LabelURL:    label.URL(),
		Format:      label.Format(),
		Barcode:     label.Barcode(),
		GeneratedAt: label.GeneratedAt(),
	})
}
