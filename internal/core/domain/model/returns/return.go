package returns

import (
	"errors"
	"strings"
	"time"

	"sellerops/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

const ReturnAggregateType = "return"

var ErrReturnIsNotConstructed = errors.New("Return must be created via NewReturn constructor")

// Return is a customer's request to send back one order item.
type Return struct {
	id            kernel.ID
	orderID       kernel.ID
	orderItemID   int64
	reason        Reason
	description   string
	status        ReturnStatus
	refundAmount  decimal.Decimal
	pickupAddress kernel.Address
	returnDate    time.Time
	updatedAt     time.Time

	isConstructed bool
}

// NewReturn creates a return in INITIATED status. The caller checks that the item
// belongs to the order.
func NewReturn(
	id kernel.ID,
	orderID kernel.ID,
	orderItemID int64,
	reason Reason,
	description string,
	refundAmount decimal.Decimal,
	pickupAddress kernel.Address,
	now time.Time,
) (*Return, error) {
	return RestoreReturn(id, orderID, orderItemID, reason, description, ReturnInitiated,
		refundAmount, pickupAddress, now, now)
}

func RestoreReturn(
	id kernel.ID,
	orderID kernel.ID,
	orderItemID int64,
	reason Reason,
	description string,
	status ReturnStatus,
	refundAmount decimal.Decimal,
	pickupAddress kernel.Address,
	returnDate time.Time,
	updatedAt time.Time,
) (*Return, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		validateItemID(orderItemID),
		reason.Validate(),
		status.Validate(),
		kernel.ValidateAmount("refund_amount", refundAmount),
		pickupAddress.Validate(),
	); err != nil {
		return nil, err
	}

	return &Return{
		id:            id,
		orderID:       orderID,
		orderItemID:   orderItemID,
		reason:        reason,
		description:   strings.TrimSpace(description),
		status:        status,
		refundAmount:  refundAmount,
		pickupAddress: pickupAddress,
		returnDate:    returnDate,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

func (r *Return) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReturnIsNotConstructed
	}
	return nil
}

func (r *Return) ID() kernel.ID                 { return r.id }
func (r *Return) OrderID() kernel.ID            { return r.orderID }
func (r *Return) OrderItemID() int64            { return r.orderItemID }
func (r *Return) Reason() Reason                { return r.reason }
func (r *Return) Description() string           { return r.description }
func (r *Return) Status() ReturnStatus          { return r.status }
func (r *Return) RefundAmount() decimal.Decimal { return r.refundAmount }
func (r *Return) PickupAddress() kernel.Address { return r.pickupAddress }
func (r *Return) ReturnDate() time.Time         { return r.returnDate }
func (r *Return) UpdatedAt() time.Time          { return r.updatedAt }

func (r *Return) AggregateType() string   { return ReturnAggregateType }
func (r *Return) LifecycleStatus() string { return r.status.String() }

func (r *Return) Approve(now time.Time) {
	r.setStatus(ReturnApproved, now)
}

func (r *Return) Reject(now time.Time) {
	r.setStatus(ReturnRejected, now)
}

func (r *Return) Complete(now time.Time) {
	r.setStatus(ReturnCompleted, now)
}

func (r *Return) setStatus(status ReturnStatus, now time.Time) {
	r.status = status
	r.updatedAt = now
}
