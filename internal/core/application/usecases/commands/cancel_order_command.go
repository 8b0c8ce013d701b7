package commands

import (
	"errors"
	"strings"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/order"
	"sellerops/internal/pkg/errs"
	"sellerops/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.ID
	reason       string
	cancelledBy  order.CancelledBy
	refundAmount *decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand builds the command. An empty cancelledBy means SELLER and a nil
// refundAmount means the order total.
func NewCancelOrderCommand(
	orderID string,
	reason string,
	cancelledBy string,
	refundAmount *decimal.Decimal,
) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		refundAmount: refundAmount,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setReason(reason),
		cmd.setCancelledBy(cancelledBy),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() kernel.ID             { return c.orderID }
func (c CancelOrderCommand) Reason() string                 { return c.reason }
func (c CancelOrderCommand) CancelledBy() order.CancelledBy { return c.cancelledBy }
func (c CancelOrderCommand) RefundAmount() *decimal.Decimal { return c.refundAmount }

func (c *CancelOrderCommand) setOrderID(raw string) error {
	id, err := parseID("order_id", raw)
	if err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CancelOrderCommand) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}

func (c *CancelOrderCommand) setCancelledBy(raw string) error {
	actor, err := order.ParseCancelledBy(strings.ToUpper(strings.TrimSpace(raw)))
	if err != nil {
		return err
	}
	c.cancelledBy = actor
	return nil
}
