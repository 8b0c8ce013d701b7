package commands

import (
	"context"
	"time"

	"sellerops/internal/core/domain/model/inventory"
	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/pricing"
	"sellerops/internal/core/domain/model/shipment"
)

// SetActivationCommandHandler switches products, listings, courier partners, pricing
// rules and special prices on or off. Toggling is idempotent: activating an active
// record succeeds and rewrites its updated_at.
//
// Example:
//
//	cmd, err := NewSetActivationCommand(ListingTarget, "LST-1", false)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("No such listing")
//	case err != nil:
//	    log.Printf("Deactivation failed: %v", err)
//	default:
//	    log.Printf("Listing is now %s", result.Status)
//	}
type SetActivationCommandHandler struct {
	uowFactory ActivationUoWFactory
	clock      kernel.Clock
}

func NewSetActivationCommandHandler(uowFactory ActivationUoWFactory, clock kernel.Clock) SetActivationCommandHandler {
	return SetActivationCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h SetActivationCommandHandler) Handle(ctx context.Context, cmd SetActivationCommand) (RecordResult, error) {
	if err := cmd.Validate(); err != nil {
		return RecordResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RecordResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var (
		result RecordResult
		err    error
	)
	now := h.clock.Now()
	switch cmd.Target() {
	case ProductTarget:
		result, err = toggle[*inventory.Product](ctx, uow.ProductRepository(), cmd, now)
	case ListingTarget:
		result, err = toggle[*inventory.Listing](ctx, uow.ListingRepository(), cmd, now)
	case CourierPartnerTarget:
		result, err = toggle[*shipment.CourierPartner](ctx, uow.CourierPartnerRepository(), cmd, now)
	case PricingRuleTarget:
		result, err = toggle[*pricing.PricingRule](ctx, uow.PricingRuleRepository(), cmd, now)
	case SpecialPriceTarget:
		result, err = toggle[*pricing.SpecialPrice](ctx, uow.SpecialPriceRepository(), cmd, now)
	default:
		err = cmd.Target().Validate()
	}
	if err != nil {
		return RecordResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RecordResult{}, err
	}

	return result, nil
}

type activatable interface {
	kernel.Aggregate
	Activate(now time.Time)
	Deactivate(now time.Time)
	IsActive() bool
}

type activatableRepository[T activatable] interface {
	Get(ctx context.Context, id kernel.ID) (T, error)
	Update(ctx context.Context, aggregate T) error
}

func toggle[T activatable](
	ctx context.Context,
	repo activatableRepository[T],
	cmd SetActivationCommand,
	now time.Time,
) (RecordResult, error) {
	record, err := repo.Get(ctx, cmd.ID())
	if err != nil {
		return RecordResult{}, err
	}

	if cmd.Active() {
		record.Activate(now)
	} else {
		record.Deactivate(now)
	}

	if err = repo.Update(ctx, record); err != nil {
		return RecordResult{}, err
	}

	return RecordResult{
		ID:       cmd.ID().String(),
		Status:   record.LifecycleStatus(),
		IsActive: record.IsActive(),
	}, nil
}
