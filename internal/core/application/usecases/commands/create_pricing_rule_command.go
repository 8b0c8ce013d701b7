package commands

import (
	"errors"
	"strings"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/pricing"
	"sellerops/internal/pkg/errs"
	"sellerops/internal/pkg/guard"
)

var ErrCreatePricingRuleCommandIsNotConstructed = errors.New(
	"CreatePricingRuleCommand must be created via NewCreatePricingRuleCommand constructor",
)

type CreatePricingRuleCommand struct { //nolint:recvcheck //using for validation
	ruleID kernel.ID
	sku    string
	terms  pricing.RuleTerms

	guard guard.ConstructorGuard
}

// NewCreatePricingRuleCommand parses the rule type; amounts and dates are checked by the aggregate.
func NewCreatePricingRuleCommand(
	ruleID, sku, ruleType string,
	terms pricing.RuleTerms,
) (CreatePricingRuleCommand, error) {
	id, idErr := parseID("rule_id", ruleID)
	parsedType, typeErr := pricing.ParseRuleType(strings.TrimSpace(ruleType))

	sku = strings.TrimSpace(sku)
	var skuErr error
	if sku == "" {
		skuErr = errs.NewValueIsRequiredError("sku")
	}

	if err := errors.Join(idErr, skuErr, typeErr); err != nil {
		return CreatePricingRuleCommand{}, err
	}

	terms.Type = parsedType
	return CreatePricingRuleCommand{
		ruleID: id,
		sku:    sku,
		terms:  terms,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c CreatePricingRuleCommand) Validate() error {
	return c.guard.Validate(ErrCreatePricingRuleCommandIsNotConstructed)
}

func (c CreatePricingRuleCommand) RuleID() kernel.ID        { return c.ruleID }
func (c CreatePricingRuleCommand) SKU() string              { return c.sku }
func (c CreatePricingRuleCommand) Terms() pricing.RuleTerms { return c.terms }
