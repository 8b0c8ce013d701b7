package cmd

import (
	"context"
	"errors"
	"fmt"

	httpin "sellerops/internal/adapters/in/http"
	"sellerops/internal/adapters/out/events"
	"sellerops/internal/adapters/out/kafka"
	"sellerops/internal/adapters/out/postgres"
	"sellerops/internal/core/application/usecases/commands"
	"sellerops/internal/core/application/usecases/queries"
	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/ports"
	"sellerops/internal/jobs"
	"sellerops/internal/pkg/logger"
	"sellerops/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs     Config
	gormDB      *gorm.DB
	uowFactory  *postgres.GormUnitOfWorkFactory
	clock       kernel.Clock
	log         *logger.Logger
	registry    *prometheus.Registry
	jobMetrics  *metrics.JobMetrics
	httpMetrics *metrics.HTTPMetrics
	closers     []func() error
}

type Option func(*compositionOptions)

type compositionOptions struct {
	clock      kernel.Clock
	publishers []ports.EventPublisher
}

// WithClock replaces the system clock, e.g. with a kernel.FixedClock in tests.
func WithClock(clock kernel.Clock) Option {
	return func(o *compositionOptions) { o.clock = clock }
}

// WithEventPublisher adds a publisher next to the metrics recorder and Kafka.
func WithEventPublisher(publisher ports.EventPublisher) Option {
	return func(o *compositionOptions) { o.publishers = append(o.publishers, publisher) }
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, log *logger.Logger, opts ...Option) (*CompositionRoot, error) {
	options := compositionOptions{clock: kernel.NewSystemClock()}
	for _, opt := range opts {
		opt(&options)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	root := &CompositionRoot{
		configs:     configs,
		gormDB:      gormDB,
		clock:       options.clock,
		log:         log,
		registry:    registry,
		jobMetrics:  metrics.NewJobMetrics(registry),
		httpMetrics: metrics.NewHTTPMetrics(registry),
	}

	publishers := append(
		[]ports.EventPublisher{events.NewTransitionRecorder(metrics.NewLifecycleMetrics(registry))},
		options.publishers...,
	)
	if brokers := configs.KafkaBrokers(); len(brokers) > 0 {
		writer, err := kafka.NewWriter(kafka.Config{Brokers: brokers, Topic: configs.KafkaLifecycleTopic})
		if err != nil {
			return nil, fmt.Errorf("kafka writer: %w", err)
		}
		publisher := kafka.NewPublisher(writer, configs.KafkaWriteTimeout, log)
		publishers = append(publishers, publisher)
		root.closers = append(root.closers, publisher.Close)
	}

	root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, events.NewFanOutPublisher(publishers...), root.clock, log)
	return root, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	return commands.NewDispatchOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateMoveShipmentCommandHandler() commands.MoveShipmentCommandHandler {
	return commands.NewMoveShipmentCommandHandler(c.shipmentUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateGenerateLabelCommandHandler() commands.GenerateLabelCommandHandler {
	return commands.NewGenerateLabelCommandHandler(c.shipmentUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreateReturnCommandHandler() commands.CreateReturnCommandHandler {
	return commands.NewCreateReturnCommandHandler(c.returnUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateChangeReturnStatusCommandHandler() commands.ChangeReturnStatusCommandHandler {
	return commands.NewChangeReturnStatusCommandHandler(c.returnUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreateReplacementCommandHandler() commands.CreateReplacementCommandHandler {
	return commands.NewCreateReplacementCommandHandler(c.returnUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateMoveReplacementCommandHandler() commands.MoveReplacementCommandHandler {
	return commands.NewMoveReplacementCommandHandler(c.returnUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreateRefundCommandHandler() commands.CreateRefundCommandHandler {
	return commands.NewCreateRefundCommandHandler(c.returnUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateChangeRefundStatusCommandHandler() commands.ChangeRefundStatusCommandHandler {
	return commands.NewChangeRefundStatusCommandHandler(c.returnUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreatePriceCommandHandler() commands.CreatePriceCommandHandler {
	return commands.NewCreatePriceCommandHandler(c.pricingUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreatePatchPriceCommandHandler() commands.PatchPriceCommandHandler {
	return commands.NewPatchPriceCommandHandler(c.pricingUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateSellingPriceCommandHandler() commands.UpdateSellingPriceCommandHandler {
	return commands.NewUpdateSellingPriceCommandHandler(c.pricingUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateGenerateReportCommandHandler() commands.GenerateReportCommandHandler {
	return commands.NewGenerateReportCommandHandler(c.reportUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateChangeReportStatusCommandHandler() commands.ChangeReportStatusCommandHandler {
	return commands.NewChangeReportStatusCommandHandler(c.reportUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreateScheduledReportCommandHandler() commands.CreateScheduledReportCommandHandler {
	return commands.NewCreateScheduledReportCommandHandler(c.reportUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRunScheduledReportCommandHandler() commands.RunScheduledReportCommandHandler {
	return commands.NewRunScheduledReportCommandHandler(c.reportUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateSetScheduleActivationCommandHandler() commands.SetScheduleActivationCommandHandler {
	return commands.NewSetScheduleActivationCommandHandler(c.reportUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRecordReportMetricsCommandHandler() commands.RecordReportMetricsCommandHandler {
	return commands.NewRecordReportMetricsCommandHandler(c.reportUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.catalogUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreateStockCommandHandler() commands.CreateStockCommandHandler {
	return commands.NewCreateStockCommandHandler(c.catalogUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateStockCommandHandler() commands.UpdateStockCommandHandler {
	return commands.NewUpdateStockCommandHandler(c.catalogUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreateListingCommandHandler() commands.CreateListingCommandHandler {
	return commands.NewCreateListingCommandHandler(c.catalogUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreateCourierPartnerCommandHandler() commands.CreateCourierPartnerCommandHandler {
	return commands.NewCreateCourierPartnerCommandHandler(c.courierUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreatePricingRuleCommandHandler() commands.CreatePricingRuleCommandHandler {
	return commands.NewCreatePricingRuleCommandHandler(c.pricingUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreateSpecialPriceCommandHandler() commands.CreateSpecialPriceCommandHandler {
	return commands.NewCreateSpecialPriceCommandHandler(c.pricingUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateSetActivationCommandHandler() commands.SetActivationCommandHandler {
	return commands.NewSetActivationCommandHandler(c.activationUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRunDueSchedulesCommandHandler() commands.RunDueSchedulesCommandHandler {
	return commands.NewRunDueSchedulesCommandHandler(c.reportUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackShipmentQueryHandler() queries.TrackShipmentQueryHandler {
	return queries.NewTrackShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateDownloadReportQueryHandler() queries.DownloadReportQueryHandler {
	return queries.NewDownloadReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProfitMarginQueryHandler() queries.GetProfitMarginQueryHandler {
	return queries.NewGetProfitMarginQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockQueryHandler() queries.GetStockQueryHandler {
	return queries.NewGetStockQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReportMetricsQueryHandler() queries.GetReportMetricsQueryHandler {
	return queries.NewGetReportMetricsQueryHandler(c.gormDB)
}

// NewHTTPServer wires every use case into the echo router.
func (c *CompositionRoot) NewHTTPServer() *echo.Echo {
	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:    c.CreateCreateOrderCommandHandler(),
		CancelOrder:    c.CreateCancelOrderCommandHandler(),
		DispatchOrder:  c.CreateDispatchOrderCommandHandler(),
		CreateShipment: c.CreateCreateShipmentCommandHandler(),
		MoveShipment:   c.CreateMoveShipmentCommandHandler(),
		GenerateLabel:  c.CreateGenerateLabelCommandHandler(),

		CreateReturn:       c.CreateCreateReturnCommandHandler(),
		ChangeReturnStatus: c.CreateChangeReturnStatusCommandHandler(),
		CreateReplacement:  c.CreateCreateReplacementCommandHandler(),
		MoveReplacement:    c.CreateMoveReplacementCommandHandler(),
		CreateRefund:       c.CreateCreateRefundCommandHandler(),
		ChangeRefundStatus: c.CreateChangeRefundStatusCommandHandler(),

		CreatePrice:        c.CreateCreatePriceCommandHandler(),
		PatchPrice:         c.CreatePatchPriceCommandHandler(),
		UpdateSellingPrice: c.CreateUpdateSellingPriceCommandHandler(),

		GenerateReport:        c.CreateGenerateReportCommandHandler(),
		ChangeReportStatus:    c.CreateChangeReportStatusCommandHandler(),
		CreateScheduledReport: c.CreateCreateScheduledReportCommandHandler(),
		RunScheduledReport:    c.CreateRunScheduledReportCommandHandler(),
		SetScheduleActivation: c.CreateSetScheduleActivationCommandHandler(),
		RecordReportMetrics:   c.CreateRecordReportMetricsCommandHandler(),

		CreateProduct:        c.CreateCreateProductCommandHandler(),
		CreateStock:          c.CreateCreateStockCommandHandler(),
		UpdateStock:          c.CreateUpdateStockCommandHandler(),
		CreateListing:        c.CreateCreateListingCommandHandler(),
		CreateCourierPartner: c.CreateCreateCourierPartnerCommandHandler(),
		CreatePricingRule:    c.CreateCreatePricingRuleCommandHandler(),
		CreateSpecialPrice:   c.CreateCreateSpecialPriceCommandHandler(),
		SetActivation:        c.CreateSetActivationCommandHandler(),

		TrackOrder:       c.CreateTrackOrderQueryHandler(),
		TrackShipment:    c.CreateTrackShipmentQueryHandler(),
		DownloadReport:   c.CreateDownloadReportQueryHandler(),
		GetProfitMargin:  c.CreateGetProfitMarginQueryHandler(),
		GetStock:         c.CreateGetStockQueryHandler(),
		GetReportMetrics: c.CreateGetReportMetricsQueryHandler(),
	}, c.log)

	return httpin.NewRouter(server, httpin.RouterOptions{
		Logger:       c.log,
		Gatherer:     c.registry,
		HTTPMetrics:  c.httpMetrics,
		MetricsPath:  c.configs.MetricsPath,
		EchoLogLevel: c.configs.EchoLogLevel,
	})
}

func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRunDueSchedulesCommandHandler(),
		c.configs.ScheduledReportsCron,
		c.jobMetrics,
		c.log,
	)
}

// Close releases the event publishers and the database pool.
func (c *CompositionRoot) Close(_ context.Context) error {
	var errs []error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	if sqlDB, err := c.gormDB.DB(); err == nil {
		errs = append(errs, sqlDB.Close())
	} else {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) returnUoWFactory() commands.ReturnUoWFactory {
	return FuncReturnUoWFactory(func() commands.ReturnUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) pricingUoWFactory() commands.PricingUoWFactory {
	return FuncPricingUoWFactory(func() commands.PricingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) reportUoWFactory() commands.ReportUoWFactory {
	return FuncReportUoWFactory(func() commands.ReportUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) activationUoWFactory() commands.ActivationUoWFactory {
	return FuncActivationUoWFactory(func() commands.ActivationUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncReturnUoWFactory func() commands.ReturnUoW

func (f FuncReturnUoWFactory) Create() commands.ReturnUoW {
	return f()
}

type FuncPricingUoWFactory func() commands.PricingUoW

func (f FuncPricingUoWFactory) Create() commands.PricingUoW {
	return f()
}

type FuncReportUoWFactory func() commands.ReportUoW

func (f FuncReportUoWFactory) Create() commands.ReportUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncActivationUoWFactory func() commands.ActivationUoW

func (f FuncActivationUoWFactory) Create() commands.ActivationUoW {
	return f()
}
