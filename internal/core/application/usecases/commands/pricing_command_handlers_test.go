package commands_test

import (
	"testing"

	"sellerops/internal/core/application/usecases/commands"
	"sellerops/internal/core/domain/model/pricing"
	"sellerops/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreatePriceCommandHandler_Handle_DerivesDiscount(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePriceCommand("PRC-1", "SKU-1", pricing.Amounts{
		ListingPrice:         decimal.NewFromInt(1000),
		SellingPrice:         decimal.NewFromInt(900),
		CostPrice:            decimal.NewFromInt(600),
		CommissionPercentage: decimal.NewFromInt(15),
		ShippingFee:          decimal.NewFromInt(50),
	})
	require.NoError(t, err)

	priceRepo := new(MockPriceRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PriceRepository").Return(priceRepo).Once(),
		priceRepo.On("Add", ctx, mock.AnythingOfType("*pricing.Price")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPricingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePriceCommandHandler(factory, testClock())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(10).Equal(result.DiscountPercentage))
	assert.True(t, decimal.NewFromInt(115).Equal(result.ProfitMargin), result.ProfitMargin.String())
	uow.AssertExpectations(t)
}

func TestCreatePriceCommandHandler_Handle_InvalidAmountsNeverOpenTransaction(t *testing.T) {
	cmd, err := commands.NewCreatePriceCommand("PRC-1", "SKU-1", pricing.Amounts{
		ListingPrice:         decimal.NewFromInt(1000),
		SellingPrice:         decimal.NewFromInt(-1),
		CommissionPercentage: decimal.NewFromInt(15),
	})
	require.NoError(t, err)

	factory := new(MockPricingUoWFactory)
	handler := commands.NewCreatePriceCommandHandler(factory, testClock())
	_, err = handler.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateSellingPriceCommandHandler_Handle_RecomputesDiscount(t *testing.T) {
	ctx := t.Context()
	existing := newTestPrice(t, "PRC-1")
	selling := decimal.NewFromInt(800)
	cmd, err := commands.NewUpdateSellingPriceCommand("PRC-1", &selling)
	require.NoError(t, err)

	priceRepo := new(MockPriceRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PriceRepository").Return(priceRepo).Once(),
		priceRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		priceRepo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPricingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateSellingPriceCommandHandler(factory, testClock())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, selling.Equal(result.SellingPrice))
	assert.True(t, decimal.NewFromInt(20).Equal(result.DiscountPercentage))
	// 800 - 600 - 120 - 50
	assert.True(t, decimal.NewFromInt(30).Equal(result.ProfitMargin), result.ProfitMargin.String())
	assert.Equal(t, testNow, existing.LastUpdated())
	uow.AssertExpectations(t)
}

func TestNewUpdateSellingPriceCommand_MissingPrice(t *testing.T) {
	_, err := commands.NewUpdateSellingPriceCommand("PRC-1", nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestPatchPriceCommandHandler_Handle_KeepsDiscount(t *testing.T) {
	ctx := t.Context()
	existing := newTestPrice(t, "PRC-1")
	listing := decimal.NewFromInt(2000)
	cmd, err := commands.NewPatchPriceCommand("PRC-1", pricing.PricePatch{ListingPrice: &listing})
	require.NoError(t, err)

	priceRepo := new(MockPriceRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PriceRepository").Return(priceRepo).Once(),
		priceRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		priceRepo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPricingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPatchPriceCommandHandler(factory, testClock())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, listing.Equal(result.ListingPrice))
	assert.True(t, decimal.NewFromInt(10).Equal(result.DiscountPercentage))
	uow.AssertExpectations(t)
}

func TestNewPatchPriceCommand_EmptyPatch(t *testing.T) {
	_, err := commands.NewPatchPriceCommand("PRC-1", pricing.PricePatch{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
