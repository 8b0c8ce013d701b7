package commands

import (
	"errors"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/guard"
)

var ErrCreateReplacementCommandIsNotConstructed = errors.New(
	"CreateReplacementCommand must be created via NewCreateReplacementCommand constructor",
)

type CreateReplacementCommand struct { //nolint:recvcheck //using for validation
	replacementID   kernel.ID
	returnID        kernel.ID
	deliveryAddress kernel.Address

	guard guard.ConstructorGuard
}

func NewCreateReplacementCommand(
	replacementID, returnID, deliveryAddress string,
) (CreateReplacementCommand, error) {
	id, idErr := parseID("replacement_id", replacementID)
	retID, retErr := parseID("return_id", returnID)
	address, addressErr := kernel.NewAddress(deliveryAddress)

	if err := errors.Join(idErr, retErr, addressErr); err != nil {
		return CreateReplacementCommand{}, err
	}

	return CreateReplacementCommand{
		replacementID:   id,
		returnID:        retID,
		deliveryAddress: address,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c CreateReplacementCommand) Validate() error {
	return c.guard.Validate(ErrCreateReplacementCommandIsNotConstructed)
}

func (c CreateReplacementCommand) ReplacementID() kernel.ID        { return c.replacementID }
func (c CreateReplacementCommand) ReturnID() kernel.ID             { return c.returnID }
func (c CreateReplacementCommand) DeliveryAddress() kernel.Address { return c.deliveryAddress }
