package shipment

import (
	"errors"
	"sort"
	"strings"
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const AggregateType = "shipment"

var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// Details are the descriptive shipment attributes fixed at creation.
type Details struct {
	CourierPartner       string
	ShipmentDate         time.Time
	ExpectedDeliveryDate time.Time
	PickupAddress        kernel.Address
	DeliveryAddress      kernel.Address
	// Weight is in kilograms.
	Weight decimal.Decimal
	// Dimensions is "LxWxH" in centimetres.
	Dimensions      string
	ShippingCharges decimal.Decimal
}

func (d Details) validate() error {
	var errsList []error
	if strings.TrimSpace(d.CourierPartner) == "" {
		errsList = append(errsList, errs.NewValueIsRequiredError("courier_partner"))
	}
	if d.ShipmentDate.IsZero() {
		errsList = append(errsList, errs.NewValueIsRequiredError("shipment_date"))
	}
	if d.ExpectedDeliveryDate.IsZero() {
		errsList = append(errsList, errs.NewValueIsRequiredError("expected_delivery_date"))
	}
	errsList = append(errsList,
		d.PickupAddress.Validate(),
		d.DeliveryAddress.Validate(),
		kernel.ValidateAmount("weight", d.Weight),
		kernel.ValidateAmount("shipping_charges", d.ShippingCharges),
	)
	return errors.Join(errsList...)
}

// Shipment is the aggregate root for the movement of one order.
type Shipment struct {
	id                 kernel.ID
	orderID            kernel.ID
	trackingNumber     string
	details            Details
	status             Status
	actualDeliveryDate *time.Time

	events        []TrackingEvent
	pendingEvents []TrackingEvent

	label        *Label
	labelPending bool

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewShipment creates a shipment in CREATED status.
func NewShipment(id, orderID kernel.ID, trackingNumber string, details Details, now time.Time) (*Shipment, error) {
	s := &Shipment{
		status:        Created,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setIDs(id, orderID),
		s.setTrackingNumber(trackingNumber),
		s.setDetails(details),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment rehydrates a shipment together with its stored events and label.
func RestoreShipment(
	id kernel.ID,
	orderID kernel.ID,
	trackingNumber string,
	details Details,
	status Status,
	actualDeliveryDate *time.Time,
	events []TrackingEvent,
	label *Label,
	createdAt time.Time,
	updatedAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		actualDeliveryDate: actualDeliveryDate,
		events:             events,
		label:              label,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		isConstructed:      true,
	}

	var statusErr error
	if statusErr = status.Validate(); statusErr == nil {
		s.status = status
	}

	if err := errors.Join(
		s.setIDs(id, orderID),
		s.setTrackingNumber(trackingNumber),
		s.setDetails(details),
		statusErr,
	); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

func (s *Shipment) ID() kernel.ID {
	return s.id
}

func (s *Shipment) OrderID() kernel.ID {
	return s.orderID
}

func (s *Shipment) TrackingNumber() string {
	return s.trackingNumber
}

func (s *Shipment) Details() Details {
	return s.details
}

func (s *Shipment) Status() Status {
	return s.status
}

func (s *Shipment) ActualDeliveryDate() *time.Time {
	return s.actualDeliveryDate
}

func (s *Shipment) Label() *Label {
	return s.label
}

func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Shipment) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *Shipment) AggregateType() string {
	return AggregateType
}

func (s *Shipment) LifecycleStatus() string {
	return s.status.String()
}

// TrackingEvents returns the full log, most recent first. Events sharing a timestamp
// keep reverse append order.
func (s *Shipment) TrackingEvents() []TrackingEvent {
	all := make([]TrackingEvent, 0, len(s.events)+len(s.pendingEvents))
	for i := len(s.pendingEvents) - 1; i >= 0; i-- {
		all = append(all, s.pendingEvents[i])
	}
	for i := len(s.events) - 1; i >= 0; i-- {
		all = append(all, s.events[i])
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].EventDate().After(all[j].EventDate())
	})
	return all
}

// PendingTrackingEvents returns events appended since the shipment was loaded.
func (s *Shipment) PendingTrackingEvents() []TrackingEvent {
	return s.pendingEvents
}

// PendingLabel returns the label generated since the shipment was loaded, if any.
func (s *Shipment) PendingLabel() *Label {
	if !s.labelPending {
		return nil
	}
	return s.label
}

// MarkPersisted folds pending events and label into the stored state.
func (s *Shipment) MarkPersisted() {
	s.events = append(s.events, s.pendingEvents...)
	s.pendingEvents = nil
	s.labelPending = false
}

// Dispatch sets SHIPPED and appends a DISPATCHED event. An empty location defaults to
// "Seller Location".
func (s *Shipment) Dispatch(location string, now time.Time) TrackingEvent {
	location = strings.TrimSpace(location)
	if location == "" {
		location = DefaultDispatchLocation
	}

	s.status = Shipped
	s.updatedAt = now
	return s.appendEvent(EventDispatched, location, dispatchedDescription, now)
}

// Deliver sets DELIVERED, stamps the actual delivery date and appends a DELIVERED event.
// An empty location defaults to "Delivery Location".
func (s *Shipment) Deliver(location string, now time.Time) TrackingEvent {
	location = strings.TrimSpace(location)
	if location == "" {
		location = DefaultDeliveryLocation
	}

	deliveredAt := now
	s.status = Delivered
	s.actualDeliveryDate = &deliveredAt
	s.updatedAt = now
	return s.appendEvent(EventDelivered, location, deliveredDescription, now)
}

// GenerateLabel attaches the shipping label. A shipment that already has a label is
// rejected with an ObjectAlreadyExistsError.
func (s *Shipment) GenerateLabel(label Label, now time.Time) error {
	if s.label != nil {
		return errs.NewObjectAlreadyExistsError("shipping label", s.id.String())
	}

	s.label = &label
	s.labelPending = true
	s.updatedAt = now
	return nil
}

func (s *Shipment) appendEvent(statusCode, location, description string, at time.Time) TrackingEvent {
	event := newTrackingEvent(s.id, statusCode, location, description, at)
	s.pendingEvents = append(s.pendingEvents, event)
	return event
}

func (s *Shipment) setIDs(id, orderID kernel.ID) error {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return err
	}
	s.id = id
	s.orderID = orderID
	return nil
}

func (s *Shipment) setTrackingNumber(trackingNumber string) error {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("tracking_number")
	}
	if len(trackingNumber) > kernel.MaxIDLength {
		return errs.NewValueIsOutOfRangeError("tracking_number length", len(trackingNumber), 1, kernel.MaxIDLength)
	}
	s.trackingNumber = trackingNumber
	return nil
}

func (s *Shipment) setDetails(details Details) error {
	if err := details.validate(); err != nil {
		return err
	}
	details.CourierPartner = strings.TrimSpace(details.CourierPartner)
	s.details = details
	return nil
}
