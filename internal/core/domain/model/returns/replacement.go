package returns

import (
	"errors"
	"strings"
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/errs"
)

const ReplacementAggregateType = "replacement"

var ErrReplacementIsNotConstructed = errors.New("Replacement must be created via NewReplacement constructor")

// Replacement ships a new unit of the returned item. Order and item are copied from
// the parent return.
type Replacement struct {
	id              kernel.ID
	returnID        kernel.ID
	orderID         kernel.ID
	orderItemID     int64
	status          ReplacementStatus
	trackingID      string
	deliveryAddress kernel.Address
	replacementDate time.Time
	updatedAt       time.Time

	isConstructed bool
}

// NewReplacement creates an INITIATED replacement for ret. The parent return is not
// required to be approved.
func NewReplacement(id kernel.ID, ret *Return, deliveryAddress kernel.Address, now time.Time) (*Replacement, error) {
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return RestoreReplacement(id, ret.ID(), ret.OrderID(), ret.OrderItemID(), ReplacementInitiated, "",
		deliveryAddress, now, now)
}

func RestoreReplacement(
	id kernel.ID,
	returnID kernel.ID,
	orderID kernel.ID,
	orderItemID int64,
	status ReplacementStatus,
	trackingID string,
	deliveryAddress kernel.Address,
	replacementDate time.Time,
	updatedAt time.Time,
) (*Replacement, error) {
	if err := errors.Join(
		id.Validate(),
		returnID.Validate(),
		orderID.Validate(),
		validateItemID(orderItemID),
		status.Validate(),
		deliveryAddress.Validate(),
	); err != nil {
		return nil, err
	}

	return &Replacement{
		id:              id,
		returnID:        returnID,
		orderID:         orderID,
		orderItemID:     orderItemID,
		status:          status,
		trackingID:      trackingID,
		deliveryAddress: deliveryAddress,
		replacementDate: replacementDate,
		updatedAt:       updatedAt,
		isConstructed:   true,
	}, nil
}

func (r *Replacement) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReplacementIsNotConstructed
	}
	return nil
}

func (r *Replacement) ID() kernel.ID                   { return r.id }
func (r *Replacement) ReturnID() kernel.ID             { return r.returnID }
func (r *Replacement) OrderID() kernel.ID              { return r.orderID }
func (r *Replacement) OrderItemID() int64              { return r.orderItemID }
func (r *Replacement) Status() ReplacementStatus       { return r.status }
func (r *Replacement) TrackingID() string              { return r.trackingID }
func (r *Replacement) DeliveryAddress() kernel.Address { return r.deliveryAddress }
func (r *Replacement) ReplacementDate() time.Time      { return r.replacementDate }
func (r *Replacement) UpdatedAt() time.Time            { return r.updatedAt }

func (r *Replacement) AggregateType() string   { return ReplacementAggregateType }
func (r *Replacement) LifecycleStatus() string { return r.status.String() }

// Dispatch stores the courier tracking id and sets DISPATCHED.
func (r *Replacement) Dispatch(trackingID string, now time.Time) error {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return errs.NewValueIsRequiredError("tracking_id")
	}
	if len(trackingID) > kernel.MaxIDLength {
		return errs.NewValueIsOutOfRangeError("tracking_id length", len(trackingID), 1, kernel.MaxIDLength)
	}

	r.trackingID = trackingID
	r.status = ReplacementDispatched
	r.updatedAt = now
	return nil
}

func (r *Replacement) Complete(now time.Time) {
	r.status = ReplacementCompleted
	r.updatedAt = now
}

func validateItemID(orderItemID int64) error {
	if orderItemID <= 0 {
		return errs.NewValueIsRequiredError("order_item_id")
	}
	return nil
}
