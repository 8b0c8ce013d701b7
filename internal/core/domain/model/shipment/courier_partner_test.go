package shipment_test

import (
	"testing"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/shipment"
	"sellerops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourierPartner(t *testing.T) {
	code, err := kernel.NewID("EKART")
	require.NoError(t, err)

	t.Run("starts active and toggles", func(t *testing.T) {
		p, err := shipment.NewCourierPartner(code, shipment.CourierContact{
			Name:          " Ekart ",
			ContactNumber: "1800-208-9898",
			Email:         "ops@ekart.example",
			ServiceType:   "Express",
		}, t0)
		require.NoError(t, err)
		assert.Equal(t, "Ekart", p.Contact().Name)
		assert.True(t, p.IsActive())

		later := t0.Add(1)
		p.Deactivate(later)
		assert.False(t, p.IsActive())
		assert.Equal(t, "INACTIVE", p.LifecycleStatus())
		assert.Equal(t, later, p.UpdatedAt())

		p.Activate(later)
		assert.Equal(t, "ACTIVE", p.LifecycleStatus())
	})

	t.Run("rejects bad contact", func(t *testing.T) {
		_, err := shipment.NewCourierPartner(code, shipment.CourierContact{Email: "not-an-email"}, t0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "email")
	})
}
