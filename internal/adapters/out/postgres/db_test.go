package postgres_test

import (
	"context"
	"testing"

	pgstore "sellerops/internal/adapters/out/postgres"
	"sellerops/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_RejectsUnknownDriver(t *testing.T) {
	_, err := pgstore.Open(context.Background(), pgstore.DBConfig{Driver: "oracle", DSN: "x"}, logger.Nop())

	require.ErrorIs(t, err, pgstore.ErrUnsupportedDriver)
}

func TestOpen_RequiresDSN(t *testing.T) {
	_, err := pgstore.Open(context.Background(), pgstore.DBConfig{Driver: pgstore.DriverSQLite}, logger.Nop())

	require.Error(t, err)
}

func TestMigrate_SQLiteCreatesEveryTable(t *testing.T) {
	ctx := context.Background()
	db, err := pgstore.Open(ctx, pgstore.DBConfig{
		Driver:       pgstore.DriverSQLite,
		DSN:          "file:migrate_test?mode=memory&cache=shared",
		MaxOpenConns: 1,
	}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, pgstore.Migrate(ctx, db, pgstore.DriverSQLite))

	for _, table := range []string{
		"orders", "order_items", "order_cancellations",
		"shipments", "shipment_tracking_events", "shipping_labels",
		"returns", "replacements", "refund_transactions",
		"prices", "pricing_rules", "special_prices",
		"reports", "scheduled_reports", "report_metrics",
		"products", "inventory", "listings", "courier_partners",
	} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}
