package commands

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/pricing"
)

type CreatePricingRuleCommandHandler struct {
	uowFactory PricingUoWFactory
	clock      kernel.Clock
}

func NewCreatePricingRuleCommandHandler(
	uowFactory PricingUoWFactory,
	clock kernel.Clock,
) CreatePricingRuleCommandHandler {
	return CreatePricingRuleCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h CreatePricingRuleCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePricingRuleCommand,
) (RecordResult, error) {
	if err := cmd.Validate(); err != nil {
		return RecordResult{}, err
	}

	rule, err := pricing.NewPricingRule(cmd.RuleID(), cmd.SKU(), cmd.Terms(), h.clock.Now())
	if err != nil {
		return RecordResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return RecordResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PricingRuleRepository().Add(ctx, rule); err != nil {
		return RecordResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RecordResult{}, err
	}

	return RecordResult{
		ID:       rule.ID().String(),
		Status:   rule.LifecycleStatus(),
		IsActive: rule.IsActive(),
	}, nil
}
