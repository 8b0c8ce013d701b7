package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sellerops/internal/adapters/out/postgres/inventoryrepo"
	"sellerops/internal/adapters/out/postgres/migrations"
	"sellerops/internal/adapters/out/postgres/orderrepo"
	"sellerops/internal/adapters/out/postgres/pricerepo"
	"sellerops/internal/adapters/out/postgres/reportrepo"
	"sellerops/internal/adapters/out/postgres/returnsrepo"
	"sellerops/internal/adapters/out/postgres/shipmentrepo"
	"sellerops/internal/pkg/logger"

	"github.com/pressly/goose/v3"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var ErrUnsupportedDriver = errors.New("unsupported database driver")

// DBConfig describes how to reach the store.
type DBConfig struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open connects to PostgreSQL or SQLite. Driver errors are translated to gorm's
// portable errors so duplicate keys surface as gorm.ErrDuplicatedKey on both.
func Open(ctx context.Context, cfg DBConfig, log *logger.Logger) (*gorm.DB, error) {
	if cfg.DSN == "" {
		return nil, errors.New("database DSN is required")
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverPostgres, "":
		dialector = gormpostgres.New(gormpostgres.Config{DSN: cfg.DSN})
	case DriverSQLite:
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening db connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql db handle: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err = sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	log.With("driver", cfg.Driver).Info(ctx, "database connection established")
	return db, nil
}

// Migrate brings the schema up to date. PostgreSQL runs the embedded goose migrations;
// SQLite, used for local runs and tests, is migrated from the persistence models.
func Migrate(ctx context.Context, db *gorm.DB, driver string) error {
	if driver == DriverSQLite {
		return db.WithContext(ctx).AutoMigrate(Models()...)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("getting sql db handle: %w", err)
	}

	goose.SetBaseFS(migrations.FS)
	if err = goose.SetDialect(DriverPostgres); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err = goose.UpContext(ctx, sqlDB, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// Models lists every persistence model in dependency order.
func Models() []any {
	models := make([]any, 0, 19)
	models = append(models, orderrepo.Models()...)
	models = append(models, shipmentrepo.Models()...)
	models = append(models, returnsrepo.Models()...)
	models = append(models, pricerepo.Models()...)
	models = append(models, reportrepo.Models()...)
	models = append(models, inventoryrepo.Models()...)
	return models
}
