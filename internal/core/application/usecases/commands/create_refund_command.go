package commands

import (
	"errors"
	"strings"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/returns"
	"sellerops/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateRefundCommandIsNotConstructed = errors.New(
	"CreateRefundCommand must be created via NewCreateRefundCommand constructor",
)

type CreateRefundCommand struct { //nolint:recvcheck //using for validation
	transactionID kernel.ID
	returnID      kernel.ID
	amount        decimal.Decimal
	method        returns.RefundMethod

	guard guard.ConstructorGuard
}

func NewCreateRefundCommand(
	transactionID, returnID string,
	amount decimal.Decimal,
	method string,
) (CreateRefundCommand, error) {
	txID, txErr := parseID("transaction_id", transactionID)
	retID, retErr := parseID("return_id", returnID)
	refundMethod, methodErr := returns.ParseRefundMethod(strings.ToUpper(strings.TrimSpace(method)))
	amountErr := kernel.ValidateAmount("refund_amount", amount)

	if err := errors.Join(txErr, retErr, methodErr, amountErr); err != nil {
		return CreateRefundCommand{}, err
	}

	return CreateRefundCommand{
		transactionID: txID,
		returnID:      retID,
		amount:        amount,
		method:        refundMethod,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRefundCommand) Validate() error {
	return c.guard.Validate(ErrCreateRefundCommandIsNotConstructed)
}

func (c CreateRefundCommand) TransactionID() kernel.ID     { return c.transactionID }
func (c CreateRefundCommand) ReturnID() kernel.ID          { return c.returnID }
func (c CreateRefundCommand) Amount() decimal.Decimal      { return c.amount }
func (c CreateRefundCommand) Method() returns.RefundMethod { return c.method }
