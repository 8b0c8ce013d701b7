package commands_test

import (
	"context"
	"testing"

	"sellerops/internal/core/application/usecases/commands"
	"sellerops/internal/core/domain/model/pricing"
	"sellerops/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockedRepository interface {
	On(methodName string, arguments ...any) *mock.Call
	AssertNotCalled(t mock.TestingT, methodName string, arguments ...any) bool
}

func TestTransitionHandlers_Handle_NotFoundRollsBack(t *testing.T) {
	tests := []struct {
		name     string
		accessor string
		repo     mockedRepository
		id       string
		handle   func(t *testing.T, ctx context.Context, uow *MockUoW) error
	}{
		{
			name:     "dispatch shipment",
			accessor: "ShipmentRepository",
			repo:     new(MockShipmentRepository),
			id:       "SHIP-404",
			handle: func(t *testing.T, ctx context.Context, uow *MockUoW) error {
				cmd, err := commands.NewDispatchShipmentCommand("SHIP-404", "")
				require.NoError(t, err)
				factory := new(MockShipmentUoWFactory)
				factory.On("Create").Return(uow).Once()
				_, err = commands.NewMoveShipmentCommandHandler(factory, testClock()).Handle(ctx, cmd)
				return err
			},
		},
		{
			name:     "deliver shipment",
			accessor: "ShipmentRepository",
			repo:     new(MockShipmentRepository),
			id:       "SHIP-404",
			handle: func(t *testing.T, ctx context.Context, uow *MockUoW) error {
				cmd, err := commands.NewDeliverShipmentCommand("SHIP-404", "Front door")
				require.NoError(t, err)
				factory := new(MockShipmentUoWFactory)
				factory.On("Create").Return(uow).Once()
				_, err = commands.NewMoveShipmentCommandHandler(factory, testClock()).Handle(ctx, cmd)
				return err
			},
		},
		{
			name:     "dispatch replacement",
			accessor: "ReplacementRepository",
			repo:     new(MockReplacementRepository),
			id:       "RPL-404",
			handle: func(t *testing.T, ctx context.Context, uow *MockUoW) error {
				cmd, err := commands.NewDispatchReplacementCommand("RPL-404", "TRK-9")
				require.NoError(t, err)
				factory := new(MockReturnUoWFactory)
				factory.On("Create").Return(uow).Once()
				_, err = commands.NewMoveReplacementCommandHandler(factory, testClock()).Handle(ctx, cmd)
				return err
			},
		},
		{
			name:     "complete replacement",
			accessor: "ReplacementRepository",
			repo:     new(MockReplacementRepository),
			id:       "RPL-404",
			handle: func(t *testing.T, ctx context.Context, uow *MockUoW) error {
				cmd, err := commands.NewCompleteReplacementCommand("RPL-404")
				require.NoError(t, err)
				factory := new(MockReturnUoWFactory)
				factory.On("Create").Return(uow).Once()
				_, err = commands.NewMoveReplacementCommandHandler(factory, testClock()).Handle(ctx, cmd)
				return err
			},
		},
		{
			name:     "process refund",
			accessor: "RefundRepository",
			repo:     new(MockRefundRepository),
			id:       "TXN-404",
			handle: func(t *testing.T, ctx context.Context, uow *MockUoW) error {
				cmd, err := commands.NewChangeRefundStatusCommand("TXN-404", commands.ProcessRefund)
				require.NoError(t, err)
				factory := new(MockReturnUoWFactory)
				factory.On("Create").Return(uow).Once()
				_, err = commands.NewChangeRefundStatusCommandHandler(factory, testClock()).Handle(ctx, cmd)
				return err
			},
		},
		{
			name:     "complete refund",
			accessor: "RefundRepository",
			repo:     new(MockRefundRepository),
			id:       "TXN-404",
			handle: func(t *testing.T, ctx context.Context, uow *MockUoW) error {
				cmd, err := commands.NewChangeRefundStatusCommand("TXN-404", commands.CompleteRefund)
				require.NoError(t, err)
				factory := new(MockReturnUoWFactory)
				factory.On("Create").Return(uow).Once()
				_, err = commands.NewChangeRefundStatusCommandHandler(factory, testClock()).Handle(ctx, cmd)
				return err
			},
		},
		{
			name:     "update selling price",
			accessor: "PriceRepository",
			repo:     new(MockPriceRepository),
			id:       "PRC-404",
			handle: func(t *testing.T, ctx context.Context, uow *MockUoW) error {
				sellingPrice := decimal.NewFromInt(899)
				cmd, err := commands.NewUpdateSellingPriceCommand("PRC-404", &sellingPrice)
				require.NoError(t, err)
				factory := new(MockPricingUoWFactory)
				factory.On("Create").Return(uow).Once()
				_, err = commands.NewUpdateSellingPriceCommandHandler(factory, testClock()).Handle(ctx, cmd)
				return err
			},
		},
		{
			name:     "patch price",
			accessor: "PriceRepository",
			repo:     new(MockPriceRepository),
			id:       "PRC-404",
			handle: func(t *testing.T, ctx context.Context, uow *MockUoW) error {
				shippingFee := decimal.NewFromInt(40)
				cmd, err := commands.NewPatchPriceCommand("PRC-404", pricing.PricePatch{ShippingFee: &shippingFee})
				require.NoError(t, err)
				factory := new(MockPricingUoWFactory)
				factory.On("Create").Return(uow).Once()
				_, err = commands.NewPatchPriceCommandHandler(factory, testClock()).Handle(ctx, cmd)
				return err
			},
		},
		{
			name:     "regenerate report",
			accessor: "ReportRepository",
			repo:     new(MockReportRepository),
			id:       "RPT-404",
			handle: func(t *testing.T, ctx context.Context, uow *MockUoW) error {
				cmd, err := commands.NewRegenerateReportCommand("RPT-404")
				require.NoError(t, err)
				factory := new(MockReportUoWFactory)
				factory.On("Create").Return(uow).Once()
				_, err = commands.NewChangeReportStatusCommandHandler(factory, testClock()).Handle(ctx, cmd)
				return err
			},
		},
		{
			name:     "run scheduled report",
			accessor: "ScheduledReportRepository",
			repo:     new(MockScheduledReportRepository),
			id:       "SCH-404",
			handle: func(t *testing.T, ctx context.Context, uow *MockUoW) error {
				cmd, err := commands.NewRunScheduledReportCommand("SCH-404")
				require.NoError(t, err)
				factory := new(MockReportUoWFactory)
				factory.On("Create").Return(uow).Once()
				_, err = commands.NewRunScheduledReportCommandHandler(factory, testClock()).Handle(ctx, cmd)
				return err
			},
		},
		{
			name:     "activate schedule",
			accessor: "ScheduledReportRepository",
			repo:     new(MockScheduledReportRepository),
			id:       "SCH-404",
			handle: func(t *testing.T, ctx context.Context, uow *MockUoW) error {
				cmd, err := commands.NewSetScheduleActivationCommand("SCH-404", true)
				require.NoError(t, err)
				factory := new(MockReportUoWFactory)
				factory.On("Create").Return(uow).Once()
				_, err = commands.NewSetScheduleActivationCommandHandler(factory, testClock()).Handle(ctx, cmd)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			uow := new(MockUoW)

			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On(tt.accessor).Return(tt.repo).Once(),
				tt.repo.On("Get", ctx, mustID(t, tt.id)).Return(nil, errs.NewObjectNotFoundError("record", tt.id)).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			err := tt.handle(t, ctx, uow)

			require.ErrorIs(t, err, errs.ErrObjectNotFound)
			tt.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			tt.repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
			if tt.accessor == "ScheduledReportRepository" {
				uow.AssertNotCalled(t, "ReportRepository")
			}
			uow.AssertNotCalled(t, "Commit", mock.Anything)
			uow.AssertExpectations(t)
		})
	}
}
