package order_test

import (
	"testing"

	"sellerops/internal/core/domain/model/order"
	"sellerops/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should default total to unit price times quantity", func(t *testing.T) {
		item, err := order.NewItem("SKU-1", "Kettle", 3, decimal.RequireFromString("199.99"), nil, "")

		require.NoError(t, err)
		assert.Equal(t, "599.97", item.TotalPrice().StringFixed(2))
		assert.Zero(t, item.ID())
	})

	t.Run("should keep explicit total", func(t *testing.T) {
		total := decimal.NewFromInt(500)

		item, err := order.NewItem("SKU-1", "Kettle", 3, decimal.NewFromInt(200), &total, "")

		require.NoError(t, err)
		assert.True(t, total.Equal(item.TotalPrice()))
	})

	t.Run("should reject invalid fields", func(t *testing.T) {
		_, err := order.NewItem(" ", "", 0, decimal.NewFromInt(-1), nil, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "sku")
		assert.Contains(t, err.Error(), "quantity")
	})
}

func TestOrder_ItemLookup(t *testing.T) {
	item, err := order.RestoreItem(42, "SKU-9", "Lamp", 1, decimal.NewFromInt(10), nil, "")
	require.NoError(t, err)
	o, err := order.RestoreOrder(newTestOrder(t, 10).ID(), validDetails(t), []order.Item{item},
		decimal.NewFromInt(10), order.Approved, nil, createdAt, createdAt)
	require.NoError(t, err)

	found, ok := o.Item(42)
	assert.True(t, ok)
	assert.Equal(t, "SKU-9", found.SKU())

	_, ok = o.Item(7)
	assert.False(t, ok)
}
