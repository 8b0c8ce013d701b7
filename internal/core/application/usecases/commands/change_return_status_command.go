package commands

import (
	"errors"
	"fmt"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/errs"
	"sellerops/internal/pkg/guard"
)

var ErrChangeReturnStatusCommandIsNotConstructed = errors.New(
	"ChangeReturnStatusCommand must be created via NewChangeReturnStatusCommand constructor",
)

type ReturnAction string

const (
	ApproveReturn  ReturnAction = "approve"
	RejectReturn   ReturnAction = "reject"
	CompleteReturn ReturnAction = "complete"
)

type ChangeReturnStatusCommand struct { //nolint:recvcheck //using for validation
	returnID kernel.ID
	action   ReturnAction

	guard guard.ConstructorGuard
}

func NewChangeReturnStatusCommand(returnID string, action ReturnAction) (ChangeReturnStatusCommand, error) {
	id, idErr := parseID("return_id", returnID)

	var actionErr error
	switch action {
	case ApproveReturn, RejectReturn, CompleteReturn:
	default:
		actionErr = errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not a return action", action))
	}

	if err := errors.Join(idErr, actionErr); err != nil {
		return ChangeReturnStatusCommand{}, err
	}

	return ChangeReturnStatusCommand{
		returnID: id,
		action:   action,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeReturnStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeReturnStatusCommandIsNotConstructed)
}

func (c ChangeReturnStatusCommand) ReturnID() kernel.ID  { return c.returnID }
func (c ChangeReturnStatusCommand) Action() ReturnAction { return c.action }
