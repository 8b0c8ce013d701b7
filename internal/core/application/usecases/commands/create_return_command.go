package commands

import (
	"errors"
	"strings"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/returns"
	"sellerops/internal/pkg/errs"
	"sellerops/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateReturnCommandIsNotConstructed = errors.New(
	"CreateReturnCommand must be created via NewCreateReturnCommand constructor",
)

type ReturnInput struct {
	ReturnID      string
	OrderID       string
	OrderItemID   int64
	Reason        string
	Description   string
	RefundAmount  decimal.Decimal
	PickupAddress string
}

type CreateReturnCommand struct { //nolint:recvcheck //using for validation
	returnID      kernel.ID
	orderID       kernel.ID
	orderItemID   int64
	reason        returns.Reason
	description   string
	refundAmount  decimal.Decimal
	pickupAddress kernel.Address

	guard guard.ConstructorGuard
}

func NewCreateReturnCommand(input ReturnInput) (CreateReturnCommand, error) {
	cmd := CreateReturnCommand{
		description:  input.Description,
		refundAmount: input.RefundAmount,
		guard:        guard.NewConstructorGuard(),
	}

	returnID, returnErr := parseID("return_id", input.ReturnID)
	orderID, orderErr := parseID("order_id", input.OrderID)
	reason, reasonErr := returns.ParseReason(strings.ToUpper(strings.TrimSpace(input.Reason)))
	address, addressErr := kernel.NewAddress(input.PickupAddress)

	var itemErr error
	if input.OrderItemID <= 0 {
		itemErr = errs.NewValueIsRequiredError("order_item_id")
	}

	if err := errors.Join(returnErr, orderErr, reasonErr, addressErr, itemErr); err != nil {
		return CreateReturnCommand{}, err
	}

	cmd.returnID = returnID
	cmd.orderID = orderID
	cmd.orderItemID = input.OrderItemID
	cmd.reason = reason
	cmd.pickupAddress = address
	return cmd, nil
}

func (c CreateReturnCommand) Validate() error {
	return c.guard.Validate(ErrCreateReturnCommandIsNotConstructed)
}

func (c CreateReturnCommand) ReturnID() kernel.ID           { return c.returnID }
func (c CreateReturnCommand) OrderID() kernel.ID            { return c.orderID }
func (c CreateReturnCommand) OrderItemID() int64            { return c.orderItemID }
func (c CreateReturnCommand) Reason() returns.Reason        { return c.reason }
func (c CreateReturnCommand) Description() string           { return c.description }
func (c CreateReturnCommand) RefundAmount() decimal.Decimal { return c.refundAmount }
func (c CreateReturnCommand) PickupAddress() kernel.Address { return c.pickupAddress }
