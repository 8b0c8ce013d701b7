package ports

import (
	"context"
)

type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork scopes one transaction. Repositories obtained from it share the transaction
// once Begin has been called.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	Commit(ctx context.Context) error

	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository

	ShipmentRepository() ShipmentRepository

	ReturnRepository() ReturnRepository

	ReplacementRepository() ReplacementRepository

	RefundRepository() RefundRepository

	PriceRepository() PriceRepository

	ReportRepository() ReportRepository

	ScheduledReportRepository() ScheduledReportRepository

	ReportMetricsRepository() ReportMetricsRepository

	ProductRepository() ProductRepository

	StockRepository() StockRepository

	ListingRepository() ListingRepository

	CourierPartnerRepository() CourierPartnerRepository

	PricingRuleRepository() PricingRuleRepository

	SpecialPriceRepository() SpecialPriceRepository
}
