package commands

import (
	"errors"
	"fmt"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/errs"
	"sellerops/internal/pkg/guard"
)

var ErrChangeRefundStatusCommandIsNotConstructed = errors.New(
	"ChangeRefundStatusCommand must be created via NewChangeRefundStatusCommand constructor",
)

type RefundAction string

const (
	ProcessRefund  RefundAction = "process"
	CompleteRefund RefundAction = "complete"
)

type ChangeRefundStatusCommand struct { //nolint:recvcheck //using for validation
	transactionID kernel.ID
	action        RefundAction

	guard guard.ConstructorGuard
}

func NewChangeRefundStatusCommand(transactionID string, action RefundAction) (ChangeRefundStatusCommand, error) {
	id, idErr := parseID("transaction_id", transactionID)

	var actionErr error
	if action != ProcessRefund && action != CompleteRefund {
		actionErr = errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not a refund action", action))
	}

	if err := errors.Join(idErr, actionErr); err != nil {
		return ChangeRefundStatusCommand{}, err
	}

	return ChangeRefundStatusCommand{
		transactionID: id,
		action:        action,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeRefundStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeRefundStatusCommandIsNotConstructed)
}

func (c ChangeRefundStatusCommand) TransactionID() kernel.ID { return c.transactionID }
func (c ChangeRefundStatusCommand) Action() RefundAction     { return c.action }
