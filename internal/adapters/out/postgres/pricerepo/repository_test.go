package pricerepo_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	pgstore "sellerops/internal/adapters/out/postgres"
	"sellerops/internal/adapters/out/postgres/pricerepo"
	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/pricing"
	"sellerops/internal/pkg/errs"
	"sellerops/internal/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.ID, aggregate kernel.Aggregate) {
	m.Called(id, aggregate)
}

// PriceRepositoryTestSuite runs against an in-memory SQLite database migrated from the
// persistence models.
type PriceRepositoryTestSuite struct {
	suite.Suite
	db         *gorm.DB
	repository *pricerepo.GormPriceRepository
	tracker    *MockAggregateTracker
	now        time.Time
}

func (suite *PriceRepositoryTestSuite) SetupTest() {
	ctx := context.Background()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(suite.T().Name())
	db, err := pgstore.Open(ctx, pgstore.DBConfig{
		Driver:       pgstore.DriverSQLite,
		DSN:          fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		MaxOpenConns: 1,
	}, logger.Nop())
	suite.Require().NoError(err)
	suite.Require().NoError(pgstore.Migrate(ctx, db, pgstore.DriverSQLite))
	suite.db = db

	suite.now = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
	suite.tracker = new(MockAggregateTracker)
	suite.repository = pricerepo.NewGormPriceRepository(db, suite.tracker)
}

func (suite *PriceRepositoryTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	suite.Require().NoError(sqlDB.Close())
}

func (suite *PriceRepositoryTestSuite) TestAdd_ThenGet_RoundTripsAmounts() {
	ctx := context.Background()
	price := suite.newPrice("PRC-1", "SKU-1")
	suite.tracker.On("TrackAggregate", price.ID(), price).Once()

	suite.Require().NoError(suite.repository.Add(ctx, price))

	retrieved, err := suite.repository.Get(ctx, price.ID())
	suite.Require().NoError(err)
	suite.Equal("SKU-1", retrieved.SKU())
	suite.True(decimal.NewFromInt(1000).Equal(retrieved.ListingPrice()))
	suite.True(decimal.NewFromInt(900).Equal(retrieved.SellingPrice()))
	suite.True(decimal.NewFromInt(10).Equal(retrieved.DiscountPercentage()))
	suite.True(price.ProfitMargin().Equal(retrieved.ProfitMargin()))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PriceRepositoryTestSuite) TestAdd_DuplicateSKU_ReturnsAlreadyExists() {
	ctx := context.Background()
	first := suite.newPrice("PRC-1", "SKU-1")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, suite.newPrice("PRC-2", "SKU-1"))

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PriceRepositoryTestSuite) TestUpdate_SellingPrice_PersistsRecomputedDiscount() {
	ctx := context.Background()
	price := suite.newPrice("PRC-1", "SKU-1")
	suite.tracker.On("TrackAggregate", price.ID(), price).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, price))

	suite.Require().NoError(price.UpdateSellingPrice(decimal.NewFromInt(750), suite.now.Add(time.Hour)))
	suite.Require().NoError(suite.repository.Update(ctx, price))

	retrieved, err := suite.repository.Get(ctx, price.ID())
	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(750).Equal(retrieved.SellingPrice()))
	suite.True(decimal.NewFromInt(25).Equal(retrieved.DiscountPercentage()))
	suite.WithinDuration(suite.now.Add(time.Hour), retrieved.LastUpdated(), time.Second)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PriceRepositoryTestSuite) TestUpdate_Missing_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.newPrice("PRC-404", "SKU-404"))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PriceRepositoryTestSuite) TestGet_Missing_ReturnsNotFound() {
	id, err := kernel.NewID("PRC-404")
	suite.Require().NoError(err)

	_, err = suite.repository.Get(context.Background(), id)

	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
	suite.Equal("price", notFound.ParamName)
}

func (suite *PriceRepositoryTestSuite) TestPricingRule_DeactivateThenGet() {
	ctx := context.Background()
	repository := pricerepo.NewGormPricingRuleRepository(suite.db, suite.tracker)
	id, err := kernel.NewID("RULE-1")
	suite.Require().NoError(err)
	pct := decimal.NewFromInt(5)
	rule, err := pricing.NewPricingRule(id, "SKU-1", pricing.RuleTerms{
		Name:       "Clearance",
		Type:       pricing.DiscountRule,
		Value:      decimal.NewFromInt(20),
		Percentage: &pct,
		Period:     pricing.Period{Start: suite.now, End: suite.now.AddDate(0, 0, 10)},
	}, suite.now)
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", id, rule).Twice()
	suite.Require().NoError(repository.Add(ctx, rule))

	rule.Deactivate(suite.now.Add(time.Hour))
	suite.Require().NoError(repository.Update(ctx, rule))

	retrieved, err := repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.False(retrieved.IsActive())
	suite.Equal(pricing.DiscountRule, retrieved.Terms().Type)
	suite.Require().NotNil(retrieved.Terms().Percentage)
	suite.True(pct.Equal(*retrieved.Terms().Percentage))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PriceRepositoryTestSuite) TestSpecialPrice_ActivateMissing_ReturnsNotFound() {
	ctx := context.Background()
	repository := pricerepo.NewGormSpecialPriceRepository(suite.db, suite.tracker)
	id, err := kernel.NewID("SP-1")
	suite.Require().NoError(err)
	special, err := pricing.NewSpecialPrice(id, "SKU-1", decimal.NewFromInt(799), "Big Sale", pricing.Period{
		Start: suite.now,
		End:   suite.now.AddDate(0, 0, 3),
	}, suite.now)
	suite.Require().NoError(err)

	suite.Require().ErrorIs(repository.Update(ctx, special), errs.ErrObjectNotFound)

	suite.tracker.On("TrackAggregate", id, special).Once()
	suite.Require().NoError(repository.Add(ctx, special))
	retrieved, err := repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal("Big Sale", retrieved.PromotionName())
	suite.True(decimal.NewFromInt(799).Equal(retrieved.Price()))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PriceRepositoryTestSuite) newPrice(rawID, sku string) *pricing.Price {
	id, err := kernel.NewID(rawID)
	suite.Require().NoError(err)
	price, err := pricing.NewPrice(id, sku, pricing.Amounts{
		ListingPrice:         decimal.NewFromInt(1000),
		SellingPrice:         decimal.NewFromInt(900),
		CostPrice:            decimal.NewFromInt(600),
		CommissionPercentage: decimal.NewFromInt(15),
		ShippingFee:          decimal.NewFromInt(50),
	}, suite.now)
	suite.Require().NoError(err)
	return price
}

func TestPriceRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PriceRepositoryTestSuite))
}
