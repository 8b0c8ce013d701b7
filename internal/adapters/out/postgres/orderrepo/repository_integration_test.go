package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"sellerops/internal/adapters/out/postgres/orderrepo"
	"sellerops/internal/adapters/out/postgres/pgtest"
	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/order"
	"sellerops/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.ID, aggregate kernel.Aggregate) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence against a real PostgreSQL
// schema created by the goose migrations.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
	now        time.Time
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.db = database.DB
	suite.now = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate("orders"))

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_PersistsOrderAndItems() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("ORD-1")

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertCount("orders", 1)
	suite.assertCount("order_items", 2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateOrder_ReturnsAlreadyExists() {
	ctx := context.Background()
	first := suite.createTestOrder("ORD-1")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, suite.createTestOrder("ORD-1"))

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.assertCount("orders", 1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructedOrder_ReturnsError() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertCount("orders", 0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrderWithItems() {
	ctx := context.Background()
	original := suite.createTestOrder("ORD-1")
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(order.Approved, retrieved.Status())
	suite.Equal("Asha Rao", retrieved.Details().CustomerName)
	suite.Equal("12 MG Road, Bengaluru", retrieved.Details().ShippingAddress.String())
	suite.True(decimal.NewFromInt(5500).Equal(retrieved.TotalAmount()))
	suite.WithinDuration(suite.now, retrieved.CreatedAt(), time.Second)

	items := retrieved.Items()
	suite.Require().Len(items, 2)
	suite.Positive(items[0].ID())
	suite.Equal("SKU-KETTLE", items[0].SKU())
	suite.Equal(2, items[0].Quantity())
	suite.True(decimal.NewFromInt(5000).Equal(items[0].TotalPrice()))

	_, found := retrieved.Item(items[1].ID())
	suite.True(found)
	suite.Empty(retrieved.Cancellations())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	id, err := kernel.NewID("ORD-MISSING")
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(context.Background(), id)

	suite.Nil(retrieved)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.Equal("order", notFoundErr.ParamName)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Cancel_PersistsStatusAndCancellation() {
	ctx := context.Background()
	original := suite.createTestOrder("ORD-1")
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	loaded, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	refund := decimal.NewFromInt(1200)
	cancelledAt := suite.now.Add(time.Hour)
	_, err = loaded.Cancel("customer changed mind", order.Customer, &refund, cancelledAt)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", loaded.ID(), loaded).Once()
	suite.Require().NoError(suite.repository.Update(ctx, loaded))
	suite.Empty(loaded.PendingCancellations())

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, retrieved.Status())
	suite.WithinDuration(cancelledAt, retrieved.UpdatedAt(), time.Second)

	cancellations := retrieved.Cancellations()
	suite.Require().Len(cancellations, 1)
	suite.Equal("CANC-ORD-1", cancellations[0].ID().String())
	suite.Equal(order.Customer, cancellations[0].CancelledBy())
	suite.True(refund.Equal(cancellations[0].RefundAmount()))

	_, err = retrieved.Cancel("again", order.Seller, nil, cancelledAt)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Dispatch_PersistsStatus() {
	ctx := context.Background()
	original := suite.createTestOrder("ORD-1")
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	original.Dispatch(suite.now.Add(time.Minute))
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Update(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(order.ReadyToDispatch, retrieved.Status())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	err := suite.repository.Update(context.Background(), suite.createTestOrder("ORD-404"))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(rawID string) *order.Order {
	id, err := kernel.NewID(rawID)
	suite.Require().NoError(err)
	address, err := kernel.NewAddress("12 MG Road, Bengaluru")
	suite.Require().NoError(err)

	kettle, err := order.NewItem("SKU-KETTLE", "Electric kettle", 2, decimal.NewFromInt(2500), nil, "8516")
	suite.Require().NoError(err)
	mug, err := order.NewItem("SKU-MUG", "Ceramic mug", 1, decimal.NewFromInt(500), nil, "")
	suite.Require().NoError(err)

	o, err := order.NewOrder(id, order.Details{
		OrderDate:       suite.now.Add(-24 * time.Hour),
		CustomerName:    "Asha Rao",
		CustomerEmail:   "asha@example.com",
		ShippingAddress: address,
		PaymentMethod:   "UPI",
	}, []order.Item{kettle, mug}, nil, suite.now)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertCount(table string, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
