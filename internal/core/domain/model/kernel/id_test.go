package kernel_test

import (
	"strings"
	"testing"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("should trim and keep natural id", func(t *testing.T) {
		id, err := kernel.NewID("  ORD-1 ")

		require.NoError(t, err)
		assert.Equal(t, "ORD-1", id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("should reject empty id", func(t *testing.T) {
		_, err := kernel.NewID("   ")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject too long id", func(t *testing.T) {
		_, err := kernel.NewID(strings.Repeat("x", kernel.MaxIDLength+1))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject reserved characters", func(t *testing.T) {
		_, err := kernel.NewID("ORD/1")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestID_ZeroValue(t *testing.T) {
	var id kernel.ID

	assert.True(t, id.IsZero())
	assert.Equal(t, kernel.ErrIDIsNotConstructed, id.Validate())
}

func TestDerivedID(t *testing.T) {
	base, _ := kernel.NewID("ORD-1")

	id, err := kernel.DerivedID("CANC", base)

	require.NoError(t, err)
	assert.Equal(t, "CANC-ORD-1", id.String())
	expected, _ := kernel.NewID("CANC-ORD-1")
	assert.True(t, id.IsEqual(expected))
}

func TestGenerateID(t *testing.T) {
	first := kernel.GenerateID("TRK")
	second := kernel.GenerateID("TRK")

	assert.True(t, strings.HasPrefix(first.String(), "TRK-"))
	assert.Len(t, first.String(), len("TRK-")+32)
	assert.False(t, first.IsEqual(second))
}
