package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"sellerops/internal/adapters/out/postgres/orderrepo"
	"sellerops/internal/adapters/out/postgres/pgtest"
	"sellerops/internal/adapters/out/postgres/shipmentrepo"
	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/shipment"
	"sellerops/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.ID, aggregate kernel.Aggregate) {
	m.Called(id, aggregate)
}

type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *shipmentrepo.GormShipmentRepository
	tracker    *MockAggregateTracker
	now        time.Time
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.now = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate("orders", "courier_partners"))
	suite.Require().NoError(suite.database.DB.Create(&orderrepo.OrderDTO{
		OrderID:         "ORD-1",
		OrderDate:       suite.now,
		CustomerName:    "Asha Rao",
		ShippingAddress: "12 MG Road, Bengaluru",
		PaymentMethod:   "UPI",
		TotalAmount:     decimal.NewFromInt(5000),
		Status:          "APPROVED",
		CreatedAt:       suite.now,
		UpdatedAt:       suite.now,
	}).Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.database.DB, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTripsDetails() {
	ctx := context.Background()
	original := suite.createTestShipment("SHP-1", "TRK-1")

	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal("TRK-1", retrieved.TrackingNumber())
	suite.Equal("ORD-1", retrieved.OrderID().String())
	suite.Equal(shipment.Created, retrieved.Status())
	suite.Equal("BlueDart", retrieved.Details().CourierPartner)
	suite.True(decimal.RequireFromString("1.250").Equal(retrieved.Details().Weight))
	suite.Nil(retrieved.ActualDeliveryDate())
	suite.Nil(retrieved.Label())
	suite.Empty(retrieved.TrackingEvents())
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", original.ID(), original)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_DuplicateTrackingNumber_ReturnsAlreadyExists() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestShipment("SHP-1", "TRK-1")))

	err := suite.repository.Add(ctx, suite.createTestShipment("SHP-2", "TRK-1"))

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_DispatchAndDeliver_AppendsEvents() {
	ctx := context.Background()
	s := suite.createTestShipment("SHP-1", "TRK-1")
	suite.Require().NoError(suite.repository.Add(ctx, s))

	s.Dispatch("", suite.now.Add(time.Hour))
	suite.Require().NoError(suite.repository.Update(ctx, s))
	suite.Empty(s.PendingTrackingEvents())

	loaded, err := suite.repository.Get(ctx, s.ID())
	suite.Require().NoError(err)
	loaded.Deliver("Customer doorstep", suite.now.Add(48*time.Hour))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	retrieved, err := suite.repository.GetByTrackingNumber(ctx, "TRK-1")
	suite.Require().NoError(err)
	suite.Equal(shipment.Delivered, retrieved.Status())
	suite.Require().NotNil(retrieved.ActualDeliveryDate())
	suite.WithinDuration(suite.now.Add(48*time.Hour), *retrieved.ActualDeliveryDate(), time.Second)

	events := retrieved.TrackingEvents()
	suite.Require().Len(events, 2)
	suite.Equal(shipment.EventDelivered, events[0].StatusCode())
	suite.Equal("Customer doorstep", events[0].Location())
	suite.Equal(shipment.EventDispatched, events[1].StatusCode())
	suite.Equal(shipment.DefaultDispatchLocation, events[1].Location())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_GenerateLabel_PersistsSingleLabel() {
	ctx := context.Background()
	s := suite.createTestShipment("SHP-1", "TRK-1")
	suite.Require().NoError(suite.repository.Add(ctx, s))

	label, err := shipment.NewLabel("https://labels.example.com/SHP-1.pdf", "", "BC-001", suite.now)
	suite.Require().NoError(err)
	suite.Require().NoError(s.GenerateLabel(label, suite.now))
	suite.Require().NoError(suite.repository.Update(ctx, s))

	retrieved, err := suite.repository.Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved.Label())
	suite.Equal(shipment.DefaultLabelFormat, retrieved.Label().Format())
	suite.Equal("BC-001", retrieved.Label().Barcode())

	err = retrieved.GenerateLabel(label, suite.now)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetByTrackingNumber_Unknown_ReturnsNotFound() {
	retrieved, err := suite.repository.GetByTrackingNumber(context.Background(), "TRK-404")

	suite.Nil(retrieved)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_NonExistentShipment_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.createTestShipment("SHP-404", "TRK-404"))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestCourierPartner_DeactivateThenGet() {
	ctx := context.Background()
	repository := shipmentrepo.NewGormCourierPartnerRepository(suite.database.DB, suite.tracker)
	code, err := kernel.NewID("BLUEDART")
	suite.Require().NoError(err)
	partner, err := shipment.NewCourierPartner(code, shipment.CourierContact{
		Name:          "BlueDart",
		ContactNumber: "1860-233-1234",
		Email:         "partners@bluedart.example",
		ServiceType:   "Surface",
	}, suite.now)
	suite.Require().NoError(err)
	suite.Require().NoError(repository.Add(ctx, partner))

	partner.Deactivate(suite.now.Add(time.Hour))
	suite.Require().NoError(repository.Update(ctx, partner))

	retrieved, err := repository.Get(ctx, code)
	suite.Require().NoError(err)
	suite.False(retrieved.IsActive())
	suite.Equal("Surface", retrieved.Contact().ServiceType)
	suite.WithinDuration(suite.now.Add(time.Hour), retrieved.UpdatedAt(), time.Second)

	otherCode, err := kernel.NewID("BD-2")
	suite.Require().NoError(err)
	sameName, err := shipment.NewCourierPartner(otherCode, partner.Contact(), suite.now)
	suite.Require().NoError(err)
	suite.Require().ErrorIs(repository.Add(ctx, sameName), errs.ErrObjectAlreadyExists)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) createTestShipment(rawID, trackingNumber string) *shipment.Shipment {
	id, err := kernel.NewID(rawID)
	suite.Require().NoError(err)
	orderID, err := kernel.NewID("ORD-1")
	suite.Require().NoError(err)
	pickup, err := kernel.NewAddress("Warehouse 4, Pune")
	suite.Require().NoError(err)
	delivery, err := kernel.NewAddress("12 MG Road, Bengaluru")
	suite.Require().NoError(err)

	s, err := shipment.NewShipment(id, orderID, trackingNumber, shipment.Details{
		CourierPartner:       "BlueDart",
		ShipmentDate:         suite.now,
		ExpectedDeliveryDate: suite.now.Add(72 * time.Hour),
		PickupAddress:        pickup,
		DeliveryAddress:      delivery,
		Weight:               decimal.RequireFromString("1.25"),
		Dimensions:           "30x20x10",
		ShippingCharges:      decimal.NewFromInt(80),
	}, suite.now)
	suite.Require().NoError(err)
	return s
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
