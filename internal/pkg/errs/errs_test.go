package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"sellerops/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "ORD-1")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "ORD-1", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: order ORD-1", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("shipment", "SHIP-1", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: shipment SHIP-1 (cause: database connection failed)",
			err.Error())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	err := errs.NewObjectAlreadyExistsError("order cancellation", "CANC-ORD-1")

	assert.Equal(t, "object already exists: order cancellation CANC-ORD-1", err.Error())
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
}

func TestObjectStateConflictError(t *testing.T) {
	t.Run("with reason", func(t *testing.T) {
		err := errs.NewObjectStateConflictError("report", "RPT-1", "report is not ready for download")

		assert.Equal(t, "object state conflict: report RPT-1: report is not ready for download", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectStateConflict)
	})

	t.Run("without reason", func(t *testing.T) {
		err := errs.NewObjectStateConflictError("report", "RPT-1", "")

		assert.Equal(t, "object state conflict: report RPT-1", err.Error())
	})
}

func TestValueErrors(t *testing.T) {
	t.Run("required", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("selling_price")

		assert.Equal(t, "value is required: selling_price", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("required with cause", func(t *testing.T) {
		err := errs.NewValueIsRequiredErrorWithCause("tracking_id", errors.New("empty string"))

		assert.Equal(t, "value is required: tracking_id (cause: empty string)", err.Error())
	})

	t.Run("invalid with cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("status", errors.New(`"LOST" is not a valid status`))

		assert.Equal(t, `value is invalid: status (cause: "LOST" is not a valid status)`, err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("out of range", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("commission_percentage", 150, 0, 100)

		assert.Equal(t,
			"value is out of range: commission_percentage is 150, min value is 0, max value is 100",
			err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("out of range keeps message on one line", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("note", "hello\nworld", 0, 10)

		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestFromDatabase(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		require.NoError(t, errs.FromDatabase(nil, "order", "ORD-1"))
	})

	t.Run("record not found becomes ObjectNotFoundError", func(t *testing.T) {
		err := errs.FromDatabase(fmt.Errorf("query: %w", gorm.ErrRecordNotFound), "order", "ORD-1")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, "object not found: order ORD-1", err.Error())
	})

	testCases := []struct {
		name string
		err  error
	}{
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey},
		{name: "pgx unique violation", err: &pgconn.PgError{Code: "23505"}},
		{name: "lib/pq unique violation", err: &pq.Error{Code: "23505"}},
		{name: "sqlite unique violation", err: errors.New("UNIQUE constraint failed: orders.order_id")},
	}
	for _, tc := range testCases {
		t.Run(tc.name+" becomes ObjectAlreadyExistsError", func(t *testing.T) {
			err := errs.FromDatabase(tc.err, "order", "ORD-1")

			require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
		})
	}

	t.Run("other postgres errors pass through", func(t *testing.T) {
		raw := &pgconn.PgError{Code: "23503"}

		err := errs.FromDatabase(raw, "order", "ORD-1")

		assert.Same(t, raw, err)
		assert.False(t, errs.IsUniqueViolation(raw))
	})
}
