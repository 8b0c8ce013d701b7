package pricing_test

import (
	"testing"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/pricing"
	"sellerops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingRule(t *testing.T) {
	id, err := kernel.NewID("RULE-1")
	require.NoError(t, err)
	period := pricing.Period{Start: created, End: created.AddDate(0, 1, 0)}

	t.Run("starts active and toggles", func(t *testing.T) {
		pct := d("10")
		r, err := pricing.NewPricingRule(id, "SKU-1", pricing.RuleTerms{
			Name:       "Festive",
			Type:       pricing.DiscountRule,
			Value:      d("50"),
			Percentage: &pct,
			Period:     period,
		}, created)
		require.NoError(t, err)
		assert.True(t, r.IsActive())

		r.Deactivate(updated)
		assert.Equal(t, "INACTIVE", r.LifecycleStatus())
		assert.Equal(t, updated, r.UpdatedAt())
		r.Activate(updated)
		assert.True(t, r.IsActive())
	})

	t.Run("rejects inverted period and unknown type", func(t *testing.T) {
		_, err := pricing.NewPricingRule(id, "SKU-1", pricing.RuleTerms{
			Name:   "Broken",
			Value:  d("1"),
			Period: pricing.Period{Start: updated, End: created},
		}, created)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "rule_type")
		assert.Contains(t, err.Error(), "end_date")
	})
}

func TestParseRuleType(t *testing.T) {
	rt, err := pricing.ParseRuleType("MARKUP")
	require.NoError(t, err)
	assert.Equal(t, pricing.MarkupRule, rt)

	_, err = pricing.ParseRuleType("UNKNOWN")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestSpecialPrice(t *testing.T) {
	id, err := kernel.NewID("SP-1")
	require.NoError(t, err)
	period := pricing.Period{Start: created, End: created.AddDate(0, 0, 7)}

	t.Run("applies inside period while active", func(t *testing.T) {
		sp, err := pricing.NewSpecialPrice(id, "SKU-1", d("799"), "Big Sale", period, created)
		require.NoError(t, err)

		assert.True(t, sp.AppliesAt(updated))
		assert.False(t, sp.AppliesAt(created.AddDate(0, 0, 8)))

		sp.Deactivate(updated)
		assert.False(t, sp.AppliesAt(updated))
		assert.Equal(t, "INACTIVE", sp.LifecycleStatus())
	})

	t.Run("requires promotion name", func(t *testing.T) {
		_, err := pricing.NewSpecialPrice(id, "SKU-1", d("-1"), " ", period, created)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
