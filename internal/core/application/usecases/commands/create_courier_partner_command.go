package commands

import (
	"errors"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/shipment"
	"sellerops/internal/pkg/guard"
)

var ErrCreateCourierPartnerCommandIsNotConstructed = errors.New(
	"CreateCourierPartnerCommand must be created via NewCreateCourierPartnerCommand constructor",
)

type CreateCourierPartnerCommand struct { //nolint:recvcheck //using for validation
	partnerCode kernel.ID
	contact     shipment.CourierContact

	guard guard.ConstructorGuard
}

func NewCreateCourierPartnerCommand(
	partnerCode string,
	contact shipment.CourierContact,
) (CreateCourierPartnerCommand, error) {
	code, err := parseID("partner_code", partnerCode)
	if err != nil {
		return CreateCourierPartnerCommand{}, err
	}

	return CreateCourierPartnerCommand{
		partnerCode: code,
		contact:     contact,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCourierPartnerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierPartnerCommandIsNotConstructed)
}

func (c CreateCourierPartnerCommand) PartnerCode() kernel.ID           { return c.partnerCode }
func (c CreateCourierPartnerCommand) Contact() shipment.CourierContact { return c.contact }
