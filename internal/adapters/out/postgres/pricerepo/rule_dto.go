package pricerepo

import (
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
)

type PricingRuleDTO struct {
	RuleID     string           `gorm:"column:rule_id;primaryKey;size:100"`
	SKU        string           `gorm:"column:sku;size:100;index;not null"`
	RuleName   string           `gorm:"column:rule_name;not null"`
	RuleType   string           `gorm:"column:rule_type;size:20;not null"`
	Value      decimal.Decimal  `gorm:"column:value;type:numeric(12,2);not null"`
	Percentage *decimal.Decimal `gorm:"column:percentage;type:numeric(5,2)"`
	StartDate  time.Time        `gorm:"column:start_date;not null"`
	EndDate    time.Time        `gorm:"column:end_date;not null"`
	IsActive   bool             `gorm:"column:is_active;not null"`
	CreatedAt  time.Time        `gorm:"column:created_at;autoCreateTime:false"`
	UpdatedAt  time.Time        `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (PricingRuleDTO) TableName() string {
	return "pricing_rules"
}

type SpecialPriceDTO struct {
	SpecialPriceID string          `gorm:"column:special_price_id;primaryKey;size:100"`
	SKU            string          `gorm:"column:sku;size:100;index;not null"`
	SpecialPrice   decimal.Decimal `gorm:"column:special_price;type:numeric(12,2);not null"`
	PromotionName  string          `gorm:"column:promotion_name;not null"`
	StartDate      time.Time       `gorm:"column:start_date;not null"`
	EndDate        time.Time       `gorm:"column:end_date;not null"`
	IsActive       bool            `gorm:"column:is_active;not null"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime:false"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (SpecialPriceDTO) TableName() string {
	return "special_prices"
}

func ruleFromDomain(r *pricing.PricingRule) PricingRuleDTO {
	terms := r.Terms()
	return PricingRuleDTO{
		RuleID:     r.ID().String(),
		SKU:        r.SKU(),
		RuleName:   terms.Name,
		RuleType:   terms.Type.String(),
		Value:      terms.Value,
		Percentage: terms.Percentage,
		StartDate:  terms.Period.Start,
		EndDate:    terms.Period.End,
		IsActive:   r.IsActive(),
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
}

func ruleToDomain(dto PricingRuleDTO) (*pricing.PricingRule, error) {
	id, err := kernel.NewID(dto.RuleID)
	if err != nil {
		return nil, err
	}
	ruleType, err := pricing.ParseRuleType(dto.RuleType)
	if err != nil {
		return nil, err
	}

	return pricing.RestorePricingRule(id, dto.SKU, pricing.RuleTerms{
		Name:       dto.RuleName,
		Type:       ruleType,
		Value:      dto.Value,
		Percentage: dto.Percentage,
		Period:     pricing.Period{Start: dto.StartDate, End: dto.EndDate},
	}, dto.IsActive, dto.CreatedAt, dto.UpdatedAt)
}

func specialPriceFromDomain(s *pricing.SpecialPrice) SpecialPriceDTO {
	return SpecialPriceDTO{
		SpecialPriceID: s.ID().String(),
		SKU:            s.SKU(),
		SpecialPrice:   s.Price(),
		PromotionName:  s.PromotionName(),
		StartDate:      s.Period().Start,
		EndDate:        s.Period().End,
		IsActive:       s.IsActive(),
		CreatedAt:      s.CreatedAt(),
		UpdatedAt:      s.UpdatedAt(),
	}
}

func specialPriceToDomain(dto SpecialPriceDTO) (*pricing.SpecialPrice, error) {
	id, err := kernel.NewID(dto.SpecialPriceID)
	if err != nil {
		return nil, err
	}

	return pricing.RestoreSpecialPrice(
		id,
		dto.SKU,
		dto.SpecialPrice,
		dto.PromotionName,
		pricing.Period{Start: dto.StartDate, End: dto.EndDate},
		dto.IsActive,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
