package pricing

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	RuleAggregateType         = "pricing_rule"
	SpecialPriceAggregateType = "special_price"
)

var (
	ErrPricingRuleIsNotConstructed  = errors.New("PricingRule must be created via NewPricingRule constructor")
	ErrSpecialPriceIsNotConstructed = errors.New("SpecialPrice must be created via NewSpecialPrice constructor")
)

// RuleType is how a pricing rule adjusts the price.
type RuleType int

const (
	UnknownRuleType RuleType = iota
	DiscountRule
	MarkupRule
	FixedRule
)

func getRuleTypeStrings() map[RuleType]string {
	return map[RuleType]string{
		UnknownRuleType: "UNKNOWN",
		DiscountRule:    "DISCOUNT",
		MarkupRule:      "MARKUP",
		FixedRule:       "FIXED",
	}
}

func ParseRuleType(value string) (RuleType, error) {
	for t, str := range getRuleTypeStrings() {
		if t != UnknownRuleType && str == value {
			return t, nil
		}
	}
	return UnknownRuleType, errs.NewValueIsInvalidErrorWithCause("rule_type", fmt.Errorf("%q is not a valid rule_type", value))
}

func (t RuleType) Validate() error {
	if _, ok := getRuleTypeStrings()[t]; !ok || t == UnknownRuleType {
		return errs.NewValueIsInvalidErrorWithCause("rule_type", fmt.Errorf("%d is not a valid rule_type", int(t)))
	}
	return nil
}

func (t RuleType) String() string {
	if str, ok := getRuleTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// Period is the inclusive window a rule or promotion applies in.
type Period struct {
	Start time.Time
	End   time.Time
}

func (p Period) validate() error {
	if p.Start.IsZero() {
		return errs.NewValueIsRequiredError("start_date")
	}
	if p.End.IsZero() {
		return errs.NewValueIsRequiredError("end_date")
	}
	if p.End.Before(p.Start) {
		return errs.NewValueIsInvalidErrorWithCause("end_date", errors.New("end date is before start date"))
	}
	return nil
}

// Contains reports whether at falls inside the period.
func (p Period) Contains(at time.Time) bool {
	return !at.Before(p.Start) && !at.After(p.End)
}

// RuleTerms describes a pricing rule. Percentage is optional.
type RuleTerms struct {
	Name       string
	Type       RuleType
	Value      decimal.Decimal
	Percentage *decimal.Decimal
	Period     Period
}

// PricingRule is a time-boxed adjustment attached to a sku.
type PricingRule struct {
	id        kernel.ID
	sku       string
	terms     RuleTerms
	isActive  bool
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewPricingRule creates an active rule.
func NewPricingRule(id kernel.ID, sku string, terms RuleTerms, now time.Time) (*PricingRule, error) {
	return RestorePricingRule(id, sku, terms, true, now, now)
}

func RestorePricingRule(
	id kernel.ID,
	sku string,
	terms RuleTerms,
	isActive bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*PricingRule, error) {
	sku = strings.TrimSpace(sku)
	terms.Name = strings.TrimSpace(terms.Name)

	var skuErr, nameErr, pctErr error
	if sku == "" {
		skuErr = errs.NewValueIsRequiredError("sku")
	}
	if terms.Name == "" {
		nameErr = errs.NewValueIsRequiredError("rule_name")
	}
	if terms.Percentage != nil {
		pctErr = kernel.ValidatePercentage("percentage", *terms.Percentage)
	}
	if err := errors.Join(
		id.Validate(),
		skuErr,
		nameErr,
		terms.Type.Validate(),
		kernel.ValidateAmount("value", terms.Value),
		pctErr,
		terms.Period.validate(),
	); err != nil {
		return nil, err
	}

	return &PricingRule{
		id:            id,
		sku:           sku,
		terms:         terms,
		isActive:      isActive,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

func (r *PricingRule) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrPricingRuleIsNotConstructed
	}
	return nil
}

func (r *PricingRule) ID() kernel.ID         { return r.id }
func (r *PricingRule) SKU() string           { return r.sku }
func (r *PricingRule) Terms() RuleTerms      { return r.terms }
func (r *PricingRule) IsActive() bool        { return r.isActive }
func (r *PricingRule) CreatedAt() time.Time  { return r.createdAt }
func (r *PricingRule) UpdatedAt() time.Time  { return r.updatedAt }
func (r *PricingRule) AggregateType() string { return RuleAggregateType }

func (r *PricingRule) LifecycleStatus() string { return activityStatus(r.isActive) }

func (r *PricingRule) Activate(now time.Time) {
	r.isActive = true
	r.updatedAt = now
}

func (r *PricingRule) Deactivate(now time.Time) {
	r.isActive = false
	r.updatedAt = now
}

// SpecialPrice is a promotional price for a sku over a period.
type SpecialPrice struct {
	id            kernel.ID
	sku           string
	price         decimal.Decimal
	promotionName string
	period        Period
	isActive      bool
	createdAt     time.Time
	updatedAt     time.Time

	isConstructed bool
}

// NewSpecialPrice creates an active promotion.
func NewSpecialPrice(
	id kernel.ID,
	sku string,
	price decimal.Decimal,
	promotionName string,
	period Period,
	now time.Time,
) (*SpecialPrice, error) {
	return RestoreSpecialPrice(id, sku, price, promotionName, period, true, now, now)
}

func RestoreSpecialPrice(
	id kernel.ID,
	sku string,
	price decimal.Decimal,
	promotionName string,
	period Period,
	isActive bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*SpecialPrice, error) {
	sku = strings.TrimSpace(sku)
	promotionName = strings.TrimSpace(promotionName)

	var skuErr, nameErr error
	if sku == "" {
		skuErr = errs.NewValueIsRequiredError("sku")
	}
	if promotionName == "" {
		nameErr = errs.NewValueIsRequiredError("promotion_name")
	}
	if err := errors.Join(
		id.Validate(),
		skuErr,
		nameErr,
		kernel.ValidateAmount("special_price", price),
		period.validate(),
	); err != nil {
		return nil, err
	}

	return &SpecialPrice{
		id:            id,
		sku:           sku,
		price:         price,
		promotionName: promotionName,
		period:        period,
		isActive:      isActive,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

func (s *SpecialPrice) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSpecialPriceIsNotConstructed
	}
	return nil
}

func (s *SpecialPrice) ID() kernel.ID          { return s.id }
func (s *SpecialPrice) SKU() string            { return s.sku }
func (s *SpecialPrice) Price() decimal.Decimal { return s.price }
func (s *SpecialPrice) PromotionName() string  { return s.promotionName }
func (s *SpecialPrice) Period() Period         { return s.period }
func (s *SpecialPrice) IsActive() bool         { return s.isActive }
func (s *SpecialPrice) CreatedAt() time.Time   { return s.createdAt }
func (s *SpecialPrice) UpdatedAt() time.Time   { return s.updatedAt }
func (s *SpecialPrice) AggregateType() string  { return SpecialPriceAggregateType }

func (s *SpecialPrice) LifecycleStatus() string { return activityStatus(s.isActive) }

// AppliesAt reports whether the promotion is active and at falls inside its period.
func (s *SpecialPrice) AppliesAt(at time.Time) bool {
	return s.isActive && s.period.Contains(at)
}

func (s *SpecialPrice) Activate(now time.Time) {
	s.isActive = true
	s.updatedAt = now
}

func (s *SpecialPrice) Deactivate(now time.Time) {
	s.isActive = false
	s.updatedAt = now
}

func activityStatus(active bool) string {
	if active {
		return "ACTIVE"
	}
	return "INACTIVE"
}
