// Package postgres provides the GORM-based Unit of Work and database bootstrap.
//
// A Unit of Work scopes one business transaction. Repositories obtained from it after
// Begin share the transaction; before Begin they use the plain connection. Every
// aggregate a repository adds or updates is tracked, and once Commit succeeds the
// tracked aggregates are announced as lifecycle events.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	o, err := uow.OrderRepository().Get(ctx, id)
//	if err != nil {
//	    return err
//	}
//	o.Dispatch(clock.Now())
//	if err = uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit is a no-op returning gorm.ErrInvalidTransaction,
// which the deferred call ignores.
package postgres

import (
	"context"

	"sellerops/internal/adapters/out/postgres/inventoryrepo"
	"sellerops/internal/adapters/out/postgres/orderrepo"
	"sellerops/internal/adapters/out/postgres/pricerepo"
	"sellerops/internal/adapters/out/postgres/reportrepo"
	"sellerops/internal/adapters/out/postgres/returnsrepo"
	"sellerops/internal/adapters/out/postgres/shipmentrepo"
	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/ports"
	"sellerops/internal/pkg/logger"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.ID
	Aggregate kernel.Aggregate
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool and
// one event publisher.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.EventPublisher
	clock     kernel.Clock
	log       *logger.Logger
}

// NewGormUnitOfWorkFactory wires the factory. A nil publisher disables event publishing.
//
// Example:
//
//	db, err := postgres.Open(ctx, cfg, log)
//	if err != nil {
//	    return err
//	}
//	factory := postgres.NewGormUnitOfWorkFactory(db, publisher, kernel.NewSystemClock(), log)
func NewGormUnitOfWorkFactory(
	db *gorm.DB,
	publisher ports.EventPublisher,
	clock kernel.Clock,
	log *logger.Logger,
) *GormUnitOfWorkFactory {
	if log == nil {
		log = logger.Nop()
	}
	return &GormUnitOfWorkFactory{
		db:        db,
		publisher: publisher,
		clock:     clock,
		log:       log,
	}
}

// Create returns a fresh unit of work with its own transaction state and tracking list.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		publisher:         f.publisher,
		clock:             f.clock,
		log:               f.log,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork implements ports.UnitOfWork on a GORM transaction.
// Instances are not safe for concurrent use; each goroutine creates its own.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	publisher         ports.EventPublisher
	clock             kernel.Clock
	log               *logger.Logger
	trackedAggregates []trackedAggregate
}

// Begin opens the transaction. Calling Begin again while a transaction is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction and then publishes one lifecycle event per tracked
// aggregate. A publishing failure is logged and does not undo the commit.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	uow.publishTracked(ctx)
	return nil
}

// Rollback discards the transaction and everything tracked in it.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ReturnRepository() ports.ReturnRepository {
	return returnsrepo.NewGormReturnRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ReplacementRepository() ports.ReplacementRepository {
	return returnsrepo.NewGormReplacementRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) RefundRepository() ports.RefundRepository {
	return returnsrepo.NewGormRefundRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PriceRepository() ports.PriceRepository {
	return pricerepo.NewGormPriceRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ReportRepository() ports.ReportRepository {
	return reportrepo.NewGormReportRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ScheduledReportRepository() ports.ScheduledReportRepository {
	return reportrepo.NewGormScheduledReportRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ReportMetricsRepository() ports.ReportMetricsRepository {
	return reportrepo.NewGormReportMetricsRepository(uow.conn())
}

func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return inventoryrepo.NewGormProductRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) StockRepository() ports.StockRepository {
	return inventoryrepo.NewGormStockRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ListingRepository() ports.ListingRepository {
	return inventoryrepo.NewGormListingRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) CourierPartnerRepository() ports.CourierPartnerRepository {
	return shipmentrepo.NewGormCourierPartnerRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PricingRuleRepository() ports.PricingRuleRepository {
	return pricerepo.NewGormPricingRuleRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) SpecialPriceRepository() ports.SpecialPriceRepository {
	return pricerepo.NewGormSpecialPriceRepository(uow.conn(), uow)
}

// TrackAggregate is called by the repositories after every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.ID, aggregate kernel.Aggregate) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// publishTracked emits events in write order. An aggregate written twice in one
// transaction is announced once, with its final status.
func (uow *GormUnitOfWork) publishTracked(ctx context.Context) {
	tracked := uow.trackedAggregates
	uow.trackedAggregates = make([]trackedAggregate, 0)
	if uow.publisher == nil || len(tracked) == 0 {
		return
	}

	now := uow.clock.Now()
	seen := make(map[string]int, len(tracked))
	events := make([]kernel.LifecycleEvent, 0, len(tracked))
	for _, t := range tracked {
		event := kernel.NewLifecycleEvent(t.ID, t.Aggregate, now)
		key := event.Aggregate + "/" + event.ID
		if i, ok := seen[key]; ok {
			events[i] = event
			continue
		}
		seen[key] = len(events)
		events = append(events, event)
	}

	if err := uow.publisher.Publish(ctx, events...); err != nil {
		uow.log.With("events", len(events)).Warn(ctx, "publishing lifecycle events failed", err)
	}
}
