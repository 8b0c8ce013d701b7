package kernel_test

import (
	"testing"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("should keep trimmed text", func(t *testing.T) {
		addr, err := kernel.NewAddress("  12 Market St, Pune ")

		require.NoError(t, err)
		assert.Equal(t, "12 Market St, Pune", addr.String())
		assert.NoError(t, addr.Validate())
	})

	t.Run("should reject blank address", func(t *testing.T) {
		_, err := kernel.NewAddress(" ")

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var addr kernel.Address

		assert.True(t, addr.IsZero())
		assert.ErrorIs(t, addr.Validate(), errs.ErrValueIsRequired)
	})
}
