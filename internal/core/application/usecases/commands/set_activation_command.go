package commands

import (
	"errors"
	"fmt"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/errs"
	"sellerops/internal/pkg/guard"
)

var ErrSetActivationCommandIsNotConstructed = errors.New(
	"SetActivationCommand must be created via NewSetActivationCommand constructor",
)

// ActivationTarget names the kind of record an activation toggle applies to.
type ActivationTarget string

const (
	ProductTarget        ActivationTarget = "product"
	ListingTarget        ActivationTarget = "listing"
	CourierPartnerTarget ActivationTarget = "courier_partner"
	PricingRuleTarget    ActivationTarget = "pricing_rule"
	SpecialPriceTarget   ActivationTarget = "special_price"
)

func (t ActivationTarget) Validate() error {
	switch t {
	case ProductTarget, ListingTarget, CourierPartnerTarget, PricingRuleTarget, SpecialPriceTarget:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("activation target", fmt.Errorf("%q is not supported", string(t)))
	}
}

type SetActivationCommand struct { //nolint:recvcheck //using for validation
	target ActivationTarget
	id     kernel.ID
	active bool

	guard guard.ConstructorGuard
}

func NewSetActivationCommand(target ActivationTarget, id string, active bool) (SetActivationCommand, error) {
	recordID, idErr := parseID(string(target)+"_id", id)
	if err := errors.Join(target.Validate(), idErr); err != nil {
		return SetActivationCommand{}, err
	}

	return SetActivationCommand{
		target: target,
		id:     recordID,
		active: active,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c SetActivationCommand) Validate() error {
	return c.guard.Validate(ErrSetActivationCommandIsNotConstructed)
}

func (c SetActivationCommand) Target() ActivationTarget { return c.target }
func (c SetActivationCommand) ID() kernel.ID            { return c.id }
func (c SetActivationCommand) Active() bool             { return c.active }
