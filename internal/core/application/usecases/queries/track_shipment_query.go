package queries

import (
	"errors"
	"strings"
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/errs"
	"sellerops/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrTrackShipmentQueryIsNotConstructed = errors.New(
	"TrackShipmentQuery must be created via NewTrackShipmentQuery or NewTrackShipmentByTrackingNumberQuery",
)

// TrackShipmentQuery looks a shipment up either by shipment id or by tracking number.
type TrackShipmentQuery struct {
	shipmentID     kernel.ID
	trackingNumber string

	guard guard.ConstructorGuard
}

func NewTrackShipmentQuery(shipmentID string) (TrackShipmentQuery, error) {
	id, err := parseID("shipment_id", shipmentID)
	if err != nil {
		return TrackShipmentQuery{}, err
	}
	return TrackShipmentQuery{shipmentID: id, guard: guard.NewConstructorGuard()}, nil
}

func NewTrackShipmentByTrackingNumberQuery(trackingNumber string) (TrackShipmentQuery, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return TrackShipmentQuery{}, errs.NewValueIsRequiredError("tracking_number")
	}
	return TrackShipmentQuery{trackingNumber: trackingNumber, guard: guard.NewConstructorGuard()}, nil
}

func (q TrackShipmentQuery) Validate() error {
	return q.guard.Validate(ErrTrackShipmentQueryIsNotConstructed)
}

// ShipmentID is zero when the query is keyed by tracking number.
func (q TrackShipmentQuery) ShipmentID() kernel.ID {
	return q.shipmentID
}

func (q TrackShipmentQuery) TrackingNumber() string {
	return q.trackingNumber
}

// TrackShipmentQueryResponse carries the tracking log most recent first.
type TrackShipmentQueryResponse struct {
	ShipmentID           string
	OrderID              string
	TrackingNumber       string
	CourierPartner       string
	Status               string
	Weight               decimal.Decimal
	ExpectedDeliveryDate time.Time
	ActualDeliveryDate   *time.Time
	Events               []TrackingEventResponse
}

type TrackingEventResponse struct {
	EventDate   time.Time
	Location    string
	Description string
	StatusCode  string
}
