package shipment

import (
	"errors"
	"strings"
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/errs"
)

// Tracking event status codes and the defaults written by dispatch and deliver.
const (
	EventDispatched = "DISPATCHED"
	EventDelivered  = "DELIVERED"

	DefaultDispatchLocation = "Seller Location"
	DefaultDeliveryLocation = "Delivery Location"

	dispatchedDescription = "Shipment dispatched"
	deliveredDescription  = "Shipment delivered"

	trackingEventIDPrefix = "TRK"
)

// TrackingEvent is one entry of a shipment's audit trail.
type TrackingEvent struct {
	id          kernel.ID
	shipmentID  kernel.ID
	eventDate   time.Time
	location    string
	description string
	statusCode  string
}

func newTrackingEvent(shipmentID kernel.ID, statusCode, location, description string, at time.Time) TrackingEvent {
	return TrackingEvent{
		id:          kernel.GenerateID(trackingEventIDPrefix),
		shipmentID:  shipmentID,
		eventDate:   at,
		location:    location,
		description: description,
		statusCode:  statusCode,
	}
}

// RestoreTrackingEvent rehydrates a stored event.
func RestoreTrackingEvent(
	id kernel.ID,
	shipmentID kernel.ID,
	eventDate time.Time,
	location string,
	description string,
	statusCode string,
) (TrackingEvent, error) {
	var codeErr error
	if strings.TrimSpace(statusCode) == "" {
		codeErr = errs.NewValueIsRequiredError("status_code")
	}
	if err := errors.Join(id.Validate(), shipmentID.Validate(), codeErr); err != nil {
		return TrackingEvent{}, err
	}

	return TrackingEvent{
		id:          id,
		shipmentID:  shipmentID,
		eventDate:   eventDate,
		location:    location,
		description: description,
		statusCode:  statusCode,
	}, nil
}

func (e TrackingEvent) ID() kernel.ID {
	return e.id
}

func (e TrackingEvent) ShipmentID() kernel.ID {
	return e.shipmentID
}

func (e TrackingEvent) EventDate() time.Time {
	return e.eventDate
}

func (e TrackingEvent) Location() string {
	return e.location
}

func (e TrackingEvent) Description() string {
	return e.description
}

func (e TrackingEvent) StatusCode() string {
	return e.statusCode
}
