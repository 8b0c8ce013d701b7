package commands_test

import (
	"context"
	"testing"
	"time"

	"sellerops/internal/core/application/usecases/commands"
	"sellerops/internal/core/domain/model/inventory"
	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/order"
	"sellerops/internal/core/domain/model/pricing"
	"sellerops/internal/core/domain/model/report"
	"sellerops/internal/core/domain/model/returns"
	"sellerops/internal/core/domain/model/shipment"
	"sellerops/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

func testClock() kernel.Clock {
	return kernel.FixedClock{At: testNow}
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.ID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*shipment.Shipment, error) {
	args := m.Called(ctx, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

type MockReturnRepository struct{ mock.Mock }

func (m *MockReturnRepository) Add(ctx context.Context, r *returns.Return) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReturnRepository) Update(ctx context.Context, r *returns.Return) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReturnRepository) Get(ctx context.Context, id kernel.ID) (*returns.Return, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*returns.Return), args.Error(1)
}

type MockReplacementRepository struct{ mock.Mock }

func (m *MockReplacementRepository) Add(ctx context.Context, r *returns.Replacement) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReplacementRepository) Update(ctx context.Context, r *returns.Replacement) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReplacementRepository) Get(ctx context.Context, id kernel.ID) (*returns.Replacement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*returns.Replacement), args.Error(1)
}

func (m *MockReplacementRepository) ExistsForReturn(ctx context.Context, returnID kernel.ID) (bool, error) {
	args := m.Called(ctx, returnID)
	return args.Bool(0), args.Error(1)
}

type MockRefundRepository struct{ mock.Mock }

func (m *MockRefundRepository) Add(ctx context.Context, r *returns.Refund) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRefundRepository) Update(ctx context.Context, r *returns.Refund) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRefundRepository) Get(ctx context.Context, transactionID kernel.ID) (*returns.Refund, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*returns.Refund), args.Error(1)
}

type MockPriceRepository struct{ mock.Mock }

func (m *MockPriceRepository) Add(ctx context.Context, p *pricing.Price) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPriceRepository) Update(ctx context.Context, p *pricing.Price) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPriceRepository) Get(ctx context.Context, id kernel.ID) (*pricing.Price, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Price), args.Error(1)
}

type MockReportRepository struct{ mock.Mock }

func (m *MockReportRepository) Add(ctx context.Context, r *report.Report) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReportRepository) Update(ctx context.Context, r *report.Report) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReportRepository) Get(ctx context.Context, id kernel.ID) (*report.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Report), args.Error(1)
}

type MockScheduledReportRepository struct{ mock.Mock }

func (m *MockScheduledReportRepository) Add(ctx context.Context, s *report.ScheduledReport) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockScheduledReportRepository) Update(ctx context.Context, s *report.ScheduledReport) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockScheduledReportRepository) Get(ctx context.Context, id kernel.ID) (*report.ScheduledReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.ScheduledReport), args.Error(1)
}

func (m *MockScheduledReportRepository) GetAllDue(ctx context.Context, now time.Time) ([]*report.ScheduledReport, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*report.ScheduledReport), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *inventory.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *inventory.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.ID) (*inventory.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Product), args.Error(1)
}

type MockStockRepository struct{ mock.Mock }

func (m *MockStockRepository) Add(ctx context.Context, s *inventory.Stock) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStockRepository) Update(ctx context.Context, s *inventory.Stock) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStockRepository) Get(ctx context.Context, id kernel.ID) (*inventory.Stock, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Stock), args.Error(1)
}

type MockListingRepository struct{ mock.Mock }

func (m *MockListingRepository) Add(ctx context.Context, l *inventory.Listing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockListingRepository) Update(ctx context.Context, l *inventory.Listing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockListingRepository) Get(ctx context.Context, id kernel.ID) (*inventory.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Listing), args.Error(1)
}

type MockCourierPartnerRepository struct{ mock.Mock }

func (m *MockCourierPartnerRepository) Add(ctx context.Context, c *shipment.CourierPartner) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierPartnerRepository) Update(ctx context.Context, c *shipment.CourierPartner) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierPartnerRepository) Get(ctx context.Context, id kernel.ID) (*shipment.CourierPartner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.CourierPartner), args.Error(1)
}

type MockPricingRuleRepository struct{ mock.Mock }

func (m *MockPricingRuleRepository) Add(ctx context.Context, r *pricing.PricingRule) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockPricingRuleRepository) Update(ctx context.Context, r *pricing.PricingRule) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockPricingRuleRepository) Get(ctx context.Context, id kernel.ID) (*pricing.PricingRule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.PricingRule), args.Error(1)
}

type MockSpecialPriceRepository struct{ mock.Mock }

func (m *MockSpecialPriceRepository) Add(ctx context.Context, sp *pricing.SpecialPrice) error {
	args := m.Called(ctx, sp)
	return args.Error(0)
}

func (m *MockSpecialPriceRepository) Update(ctx context.Context, sp *pricing.SpecialPrice) error {
	args := m.Called(ctx, sp)
	return args.Error(0)
}

func (m *MockSpecialPriceRepository) Get(ctx context.Context, id kernel.ID) (*pricing.SpecialPrice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.SpecialPrice), args.Error(1)
}

type MockReportMetricsRepository struct{ mock.Mock }

func (m *MockReportMetricsRepository) Add(ctx context.Context, metrics *report.Metrics) error {
	args := m.Called(ctx, metrics)
	return args.Error(0)
}

func (m *MockReportMetricsRepository) Get(ctx context.Context, reportID kernel.ID) (*report.Metrics, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Metrics), args.Error(1)
}

// MockUoW satisfies every area unit of work.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) ReturnRepository() ports.ReturnRepository {
	args := m.Called()
	return args.Get(0).(ports.ReturnRepository)
}

func (m *MockUoW) ReplacementRepository() ports.ReplacementRepository {
	args := m.Called()
	return args.Get(0).(ports.ReplacementRepository)
}

func (m *MockUoW) RefundRepository() ports.RefundRepository {
	args := m.Called()
	return args.Get(0).(ports.RefundRepository)
}

func (m *MockUoW) PriceRepository() ports.PriceRepository {
	args := m.Called()
	return args.Get(0).(ports.PriceRepository)
}

func (m *MockUoW) ReportRepository() ports.ReportRepository {
	args := m.Called()
	return args.Get(0).(ports.ReportRepository)
}

func (m *MockUoW) ScheduledReportRepository() ports.ScheduledReportRepository {
	args := m.Called()
	return args.Get(0).(ports.ScheduledReportRepository)
}

func (m *MockUoW) ReportMetricsRepository() ports.ReportMetricsRepository {
	args := m.Called()
	return args.Get(0).(ports.ReportMetricsRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) StockRepository() ports.StockRepository {
	args := m.Called()
	return args.Get(0).(ports.StockRepository)
}

func (m *MockUoW) ListingRepository() ports.ListingRepository {
	args := m.Called()
	return args.Get(0).(ports.ListingRepository)
}

func (m *MockUoW) CourierPartnerRepository() ports.CourierPartnerRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierPartnerRepository)
}

func (m *MockUoW) PricingRuleRepository() ports.PricingRuleRepository {
	args := m.Called()
	return args.Get(0).(ports.PricingRuleRepository)
}

func (m *MockUoW) SpecialPriceRepository() ports.SpecialPriceRepository {
	args := m.Called()
	return args.Get(0).(ports.SpecialPriceRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockReturnUoWFactory struct{ mock.Mock }

func (m *MockReturnUoWFactory) Create() commands.ReturnUoW {
	args := m.Called()
	return args.Get(0).(commands.ReturnUoW)
}

type MockPricingUoWFactory struct{ mock.Mock }

func (m *MockPricingUoWFactory) Create() commands.PricingUoW {
	args := m.Called()
	return args.Get(0).(commands.PricingUoW)
}

type MockReportUoWFactory struct{ mock.Mock }

func (m *MockReportUoWFactory) Create() commands.ReportUoW {
	args := m.Called()
	return args.Get(0).(commands.ReportUoW)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockCourierUoWFactory struct{ mock.Mock }

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

type MockActivationUoWFactory struct{ mock.Mock }

func (m *MockActivationUoWFactory) Create() commands.ActivationUoW {
	args := m.Called()
	return args.Get(0).(commands.ActivationUoW)
}

func mustID(t *testing.T, raw string) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(raw)
	require.NoError(t, err)
	return id
}

func mustAddress(t *testing.T, raw string) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress(raw)
	require.NoError(t, err)
	return address
}

func newTestOrder(t *testing.T, id string) *order.Order {
	t.Helper()
	item, err := order.RestoreItem(7, "SKU-1", "Kettle", 2, decimal.NewFromInt(2500), nil, "8516")
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		mustID(t, id),
		order.Details{
			OrderDate:       testNow.Add(-48 * time.Hour),
			CustomerName:    "Asha Rao",
			CustomerEmail:   "asha@example.com",
			ShippingAddress: mustAddress(t, "12 MG Road, Bengaluru"),
			PaymentMethod:   "UPI",
		},
		[]order.Item{item},
		decimal.NewFromInt(5000),
		order.Approved,
		nil,
		testNow.Add(-48*time.Hour),
		testNow.Add(-48*time.Hour),
	)
	require.NoError(t, err)
	return o
}

func newTestShipment(t *testing.T, id, orderID string) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(mustID(t, id), mustID(t, orderID), "TN-"+id, shipment.Details{
		CourierPartner:       "BlueDart",
		ShipmentDate:         testNow,
		ExpectedDeliveryDate: testNow.Add(72 * time.Hour),
		PickupAddress:        mustAddress(t, "Warehouse 4, Pune"),
		DeliveryAddress:      mustAddress(t, "12 MG Road, Bengaluru"),
		Weight:               decimal.RequireFromString("1.5"),
		ShippingCharges:      decimal.NewFromInt(80),
	}, testNow.Add(-time.Hour))
	require.NoError(t, err)
	return s
}

func newTestReturn(t *testing.T, id, orderID string) *returns.Return {
	t.Helper()
	r, err := returns.NewReturn(
		mustID(t, id),
		mustID(t, orderID),
		7,
		returns.Defective,
		"does not heat",
		decimal.NewFromInt(2500),
		mustAddress(t, "12 MG Road, Bengaluru"),
		testNow.Add(-time.Hour),
	)
	require.NoError(t, err)
	return r
}

func newTestPrice(t *testing.T, id string) *pricing.Price {
	t.Helper()
	p, err := pricing.NewPrice(mustID(t, id), "SKU-1", pricing.Amounts{
		ListingPrice:         decimal.NewFromInt(1000),
		SellingPrice:         decimal.NewFromInt(900),
		CostPrice:            decimal.NewFromInt(600),
		CommissionPercentage: decimal.NewFromInt(15),
		ShippingFee:          decimal.NewFromInt(50),
	}, testNow.Add(-time.Hour))
	require.NoError(t, err)
	return p
}

func newTestSchedule(t *testing.T, id string, nextRun time.Time) *report.ScheduledReport {
	t.Helper()
	s, err := report.NewScheduledReport(
		mustID(t, id),
		report.Definition{Type: report.Sales, Name: "Weekly sales", Format: report.CSV},
		report.Weekly,
		nextRun,
		[]string{"ops@example.com"},
		testNow.Add(-30*24*time.Hour),
	)
	require.NoError(t, err)
	return s
}

func newTestProduct(t *testing.T, sku string) *inventory.Product {
	t.Helper()
	p, err := inventory.NewProduct(mustID(t, sku), inventory.ProductDetails{
		FSN:           "FSN-" + sku,
		Name:          "Kettle",
		Brand:         "Acme",
		Category:      "Kitchen",
		MRP:           decimal.NewFromInt(2999),
		HSNCode:       "8516",
		TaxPercentage: decimal.NewFromInt(18),
	}, testNow.Add(-time.Hour))
	require.NoError(t, err)
	return p
}

func newTestStock(t *testing.T, sku string) *inventory.Stock {
	t.Helper()
	s, err := inventory.NewStock(mustID(t, sku), inventory.Quantities{Available: 10, Reserved: 2, Damaged: 1}, "PNQ-2", 2,
		testNow.Add(-time.Hour))
	require.NoError(t, err)
	return s
}

func newTestListing(t *testing.T, id, sku string) *inventory.Listing {
	t.Helper()
	l, err := inventory.NewListing(mustID(t, id), mustID(t, sku), inventory.ListingTerms{FulfillmentType: "FBF"},
		testNow.Add(-time.Hour))
	require.NoError(t, err)
	return l
}
