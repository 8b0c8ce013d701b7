package order

import (
	"errors"
	"strings"
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CancellationIDPrefix is prepended to the order id to form the cancellation id.
const CancellationIDPrefix = "CANC"

// Cancellation records why and by whom an order was cancelled and how much is refunded.
type Cancellation struct {
	id           kernel.ID
	orderID      kernel.ID
	reason       string
	cancelledBy  CancelledBy
	refundAmount decimal.Decimal
	cancelledAt  time.Time
}

// CancellationIDFor derives "CANC-<order_id>".
func CancellationIDFor(orderID kernel.ID) (kernel.ID, error) {
	return kernel.DerivedID(CancellationIDPrefix, orderID)
}

// RestoreCancellation rehydrates a persisted cancellation.
func RestoreCancellation(
	id kernel.ID,
	orderID kernel.ID,
	reason string,
	cancelledBy CancelledBy,
	refundAmount decimal.Decimal,
	cancelledAt time.Time,
) (*Cancellation, error) {
	c := &Cancellation{
		id:           id,
		orderID:      orderID,
		reason:       strings.TrimSpace(reason),
		cancelledBy:  cancelledBy,
		refundAmount: refundAmount,
		cancelledAt:  cancelledAt,
	}

	var reasonErr error
	if c.reason == "" {
		reasonErr = errs.NewValueIsRequiredError("reason")
	}

	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		reasonErr,
		cancelledBy.Validate(),
		kernel.ValidateAmount("refund_amount", refundAmount),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Cancellation) ID() kernel.ID {
	return c.id
}

func (c *Cancellation) OrderID() kernel.ID {
	return c.orderID
}

func (c *Cancellation) Reason() string {
	return c.reason
}

func (c *Cancellation) CancelledBy() CancelledBy {
	return c.cancelledBy
}

func (c *Cancellation) RefundAmount() decimal.Decimal {
	return c.refundAmount
}

func (c *Cancellation) CancelledAt() time.Time {
	return c.cancelledAt
}
