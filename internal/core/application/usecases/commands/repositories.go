package commands

import (
	"context"

	"sellerops/internal/core/ports"
)

type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	ReturnRepoFactory interface {
		ReturnRepository() ports.ReturnRepository
	}

	ReplacementRepoFactory interface {
		ReplacementRepository() ports.ReplacementRepository
	}

	RefundRepoFactory interface {
		RefundRepository() ports.RefundRepository
	}

	PriceRepoFactory interface {
		PriceRepository() ports.PriceRepository
	}

	ReportRepoFactory interface {
		ReportRepository() ports.ReportRepository
	}

	ScheduledReportRepoFactory interface {
		ScheduledReportRepository() ports.ScheduledReportRepository
	}

	ReportMetricsRepoFactory interface {
		ReportMetricsRepository() ports.ReportMetricsRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	StockRepoFactory interface {
		StockRepository() ports.StockRepository
	}

	ListingRepoFactory interface {
		ListingRepository() ports.ListingRepository
	}

	CourierPartnerRepoFactory interface {
		CourierPartnerRepository() ports.CourierPartnerRepository
	}

	PricingRuleRepoFactory interface {
		PricingRuleRepository() ports.PricingRuleRepository
	}

	SpecialPriceRepoFactory interface {
		SpecialPriceRepository() ports.SpecialPriceRepository
	}

	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	ShipmentUoW interface {
		TxManager
		OrderRepoFactory
		ShipmentRepoFactory
	}

	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	ReturnUoW interface {
		TxManager
		OrderRepoFactory
		ReturnRepoFactory
		ReplacementRepoFactory
		RefundRepoFactory
	}

	ReturnUoWFactory interface {
		Create() ReturnUoW
	}

	PricingUoW interface {
		TxManager
		PriceRepoFactory
		PricingRuleRepoFactory
		SpecialPriceRepoFactory
	}

	PricingUoWFactory interface {
		Create() PricingUoW
	}

	ReportUoW interface {
		TxManager
		ReportRepoFactory
		ScheduledReportRepoFactory
		ReportMetricsRepoFactory
	}

	ReportUoWFactory interface {
		Create() ReportUoW
	}

	CatalogUoW interface {
		TxManager
		ProductRepoFactory
		StockRepoFactory
		ListingRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	CourierUoW interface {
		TxManager
		CourierPartnerRepoFactory
	}

	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// ActivationUoW reaches every record that can be switched on and off.
	ActivationUoW interface {
		TxManager
		ProductRepoFactory
		ListingRepoFactory
		CourierPartnerRepoFactory
		PricingRuleRepoFactory
		SpecialPriceRepoFactory
	}

	ActivationUoWFactory interface {
		Create() ActivationUoW
	}
)
