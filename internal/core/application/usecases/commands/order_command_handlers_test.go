package commands_test

import (
	"errors"
	"testing"
	"time"

	"sellerops/internal/core/application/usecases/commands"
	"sellerops/internal/core/domain/model/order"
	"sellerops/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validOrderInput() commands.OrderInput {
	return commands.OrderInput{
		OrderID:         "ORD-1",
		OrderDate:       testNow.Add(-time.Hour),
		CustomerName:    "Asha Rao",
		CustomerEmail:   "asha@example.com",
		ShippingAddress: "12 MG Road, Bengaluru",
		PaymentMethod:   "UPI",
		Items: []commands.OrderItemInput{
			{SKU: "SKU-1", ProductName: "Kettle", Quantity: 2, UnitPrice: decimal.NewFromInt(2500)},
		},
	}
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(validOrderInput())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	var stored *order.Order
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, testClock())
	require.NoError(t, handler.Handle(ctx, cmd))

	require.NotNil(t, stored)
	assert.Equal(t, order.Approved, stored.Status())
	assert.True(t, decimal.NewFromInt(5000).Equal(stored.TotalAmount()))
	assert.Equal(t, testNow, stored.CreatedAt())

	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_DuplicateRollsBack(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(validOrderInput())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	duplicate := errs.NewObjectAlreadyExistsError("order", "ORD-1")

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(duplicate).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, testClock())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NotConstructed(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(factory, testClock())

	err := handler.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := newTestOrder(t, "ORD-1")
	cmd, err := commands.NewCancelOrderCommand("ORD-1", "Customer request", "", nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		orderRepo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, testClock())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "CANC-ORD-1", result.CancellationID)
	assert.Equal(t, order.Cancelled, result.Status)

	pending := existing.PendingCancellations()
	require.Len(t, pending, 1)
	assert.Equal(t, order.Seller, pending[0].CancelledBy())
	assert.True(t, existing.TotalAmount().Equal(pending[0].RefundAmount()))

	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelOrderCommand("ORD-404", "Customer request", "CUSTOMER", nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, cmd.OrderID()).Return(nil, errs.NewObjectNotFoundError("order", "ORD-404")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, testClock())
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestDispatchOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := newTestOrder(t, "ORD-2")
	cmd, err := commands.NewDispatchOrderCommand("ORD-2")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		orderRepo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDispatchOrderCommandHandler(factory, testClock())
	status, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.ReadyToDispatch, status)
	assert.Equal(t, testNow, existing.UpdatedAt())
	uow.AssertExpectations(t)
}

func TestDispatchOrderCommandHandler_Handle_CommitFails(t *testing.T) {
	ctx := t.Context()
	existing := newTestOrder(t, "ORD-2")
	cmd, err := commands.NewDispatchOrderCommand("ORD-2")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	commitErr := errors.New("connection reset")

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		orderRepo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(commitErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDispatchOrderCommandHandler(factory, testClock())
	status, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commitErr)
	assert.Equal(t, order.Unknown, status)
	uow.AssertExpectations(t)
}
