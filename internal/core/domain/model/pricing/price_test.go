package pricing_test

import (
	"testing"
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/pricing"
	"sellerops/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	created = time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	updated = created.Add(time.Hour)
)

func newTestPrice(t *testing.T, listing string) *pricing.Price {
	t.Helper()
	id, err := kernel.NewID("PRC-1")
	require.NoError(t, err)
	p, err := pricing.NewPrice(id, "SKU-1", pricing.Amounts{
		ListingPrice:         d(listing),
		SellingPrice:         d("900"),
		CostPrice:            d("600"),
		CommissionPercentage: d("15"),
		ShippingFee:          d("50"),
	}, created)
	require.NoError(t, err)
	return p
}

func TestNewPrice(t *testing.T) {
	t.Run("derives discount", func(t *testing.T) {
		p := newTestPrice(t, "1000")

		require.NoError(t, p.Validate())
		assert.True(t, d("10").Equal(p.DiscountPercentage()))
		assert.True(t, d("115").Equal(p.ProfitMargin()))
	})

	t.Run("rejects out of range fields", func(t *testing.T) {
		id, _ := kernel.NewID("PRC-1")

		_, err := pricing.NewPrice(id, "", pricing.Amounts{
			ListingPrice:         d("-1"),
			CommissionPercentage: d("150"),
		}, created)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "commission_percentage")
	})
}

func TestPrice_UpdateSellingPrice(t *testing.T) {
	t.Run("recomputes discount", func(t *testing.T) {
		p := newTestPrice(t, "1000")

		require.NoError(t, p.UpdateSellingPrice(d("750"), updated))

		assert.True(t, d("750").Equal(p.SellingPrice()))
		assert.True(t, d("25").Equal(p.DiscountPercentage()))
		assert.Equal(t, updated, p.LastUpdated())
	})

	t.Run("zero listing keeps discount", func(t *testing.T) {
		p := newTestPrice(t, "0")
		before := p.DiscountPercentage()

		require.NoError(t, p.UpdateSellingPrice(d("450"), updated))

		assert.True(t, before.Equal(p.DiscountPercentage()))
		assert.True(t, d("450").Equal(p.SellingPrice()))
	})

	t.Run("selling above listing round-trips through restore", func(t *testing.T) {
		p := newTestPrice(t, "100")

		require.NoError(t, p.UpdateSellingPrice(d("1000"), updated))
		assert.True(t, d("-900").Equal(p.DiscountPercentage()))

		restored, err := pricing.RestorePrice(p.ID(), p.SKU(), pricing.Amounts{
			ListingPrice:         p.ListingPrice(),
			SellingPrice:         p.SellingPrice(),
			CostPrice:            p.CostPrice(),
			CommissionPercentage: p.CommissionPercentage(),
			ShippingFee:          p.ShippingFee(),
		}, p.DiscountPercentage(), p.LastUpdated())
		require.NoError(t, err)
		assert.True(t, p.DiscountPercentage().Equal(restored.DiscountPercentage()))
	})

	t.Run("rejects discount outside stored range like NewPrice", func(t *testing.T) {
		p := newTestPrice(t, "100")

		err := p.UpdateSellingPrice(d("2000"), updated)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.True(t, d("900").Equal(p.SellingPrice()))
		assert.True(t, d("-800").Equal(p.DiscountPercentage()))
		assert.Equal(t, created, p.LastUpdated())

		_, err = pricing.NewPrice(p.ID(), p.SKU(), pricing.Amounts{
			ListingPrice: d("100"),
			SellingPrice: d("2000"),
		}, created)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		p := newTestPrice(t, "1000")

		err := p.UpdateSellingPrice(d("-5"), updated)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.True(t, d("900").Equal(p.SellingPrice()))
	})
}

func TestPrice_ApplyPatch(t *testing.T) {
	t.Run("applies only present fields without recomputing discount", func(t *testing.T) {
		p := newTestPrice(t, "1000")
		selling := d("500")
		fee := d("0")

		err := p.ApplyPatch(pricing.PricePatch{SellingPrice: &selling, ShippingFee: &fee}, updated)

		require.NoError(t, err)
		assert.True(t, selling.Equal(p.SellingPrice()))
		assert.True(t, fee.Equal(p.ShippingFee()))
		assert.True(t, d("10").Equal(p.DiscountPercentage()))
		assert.True(t, d("1000").Equal(p.ListingPrice()))
		assert.Equal(t, updated, p.LastUpdated())
	})

	t.Run("leaves price unchanged on invalid patch", func(t *testing.T) {
		p := newTestPrice(t, "1000")
		selling := d("500")
		commission := d("101")

		err := p.ApplyPatch(pricing.PricePatch{SellingPrice: &selling, CommissionPercentage: &commission}, updated)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.True(t, d("900").Equal(p.SellingPrice()))
		assert.Equal(t, created, p.LastUpdated())
	})

	t.Run("empty patch", func(t *testing.T) {
		assert.True(t, pricing.PricePatch{}.IsEmpty())
		one := decimal.NewFromInt(1)
		assert.False(t, pricing.PricePatch{CostPrice: &one}.IsEmpty())
	})
}
