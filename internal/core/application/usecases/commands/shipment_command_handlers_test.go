package commands_test

import (
	"testing"
	"time"

	"sellerops/internal/core/application/usecases/commands"
	"sellerops/internal/core/domain/model/shipment"
	"sellerops/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validShipmentInput() commands.ShipmentInput {
	return commands.ShipmentInput{
		ShipmentID:           "SHIP-1",
		OrderID:              "ORD-1",
		TrackingNumber:       "TN-100",
		CourierPartner:       "BlueDart",
		ShipmentDate:         testNow,
		ExpectedDeliveryDate: testNow.Add(72 * time.Hour),
		PickupAddress:        "Warehouse 4, Pune",
		DeliveryAddress:      "12 MG Road, Bengaluru",
		Weight:               decimal.RequireFromString("1.5"),
		ShippingCharges:      decimal.NewFromInt(80),
	}
}

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateShipmentCommand(validShipmentInput())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, cmd.OrderID()).Return(newTestOrder(t, "ORD-1"), nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Add", ctx, mock.MatchedBy(func(s *shipment.Shipment) bool {
			return s.Status() == shipment.Created && s.TrackingNumber() == "TN-100"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateShipmentCommandHandler(factory, testClock())
	require.NoError(t, handler.Handle(ctx, cmd))

	uow.AssertExpectations(t)
	shipmentRepo.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_UnknownOrder(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateShipmentCommand(validShipmentInput())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, cmd.OrderID()).Return(nil, errs.NewObjectNotFoundError("order", "ORD-1")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateShipmentCommandHandler(factory, testClock())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "ShipmentRepository")
	uow.AssertExpectations(t)
}

func TestMoveShipmentCommandHandler_Handle_Dispatch(t *testing.T) {
	ctx := t.Context()
	existing := newTestShipment(t, "SHIP-1", "ORD-1")
	cmd, err := commands.NewDispatchShipmentCommand("SHIP-1", "")
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		shipmentRepo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMoveShipmentCommandHandler(factory, testClock())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.Shipped, result.Status)
	assert.Equal(t, shipment.EventDispatched, result.Event.StatusCode())
	assert.Equal(t, shipment.DefaultDispatchLocation, result.Event.Location())
	assert.Nil(t, result.ActualDeliveryDate)
	assert.Len(t, existing.PendingTrackingEvents(), 1)
	uow.AssertExpectations(t)
}

func TestMoveShipmentCommandHandler_Handle_Deliver(t *testing.T) {
	ctx := t.Context()
	existing := newTestShipment(t, "SHIP-1", "ORD-1")
	cmd, err := commands.NewDeliverShipmentCommand("SHIP-1", "Front door")
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		shipmentRepo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMoveShipmentCommandHandler(factory, testClock())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.Delivered, result.Status)
	assert.Equal(t, "Front door", result.Event.Location())
	require.NotNil(t, result.ActualDeliveryDate)
	assert.Equal(t, testNow, *result.ActualDeliveryDate)
	uow.AssertExpectations(t)
}

func TestGenerateLabelCommandHandler_Handle_SecondLabelConflicts(t *testing.T) {
	ctx := t.Context()
	existing := newTestShipment(t, "SHIP-1", "ORD-1")
	first, err := shipment.NewLabel("https://labels.example.com/SHIP-1.pdf", "", "BC-1", testNow)
	require.NoError(t, err)
	require.NoError(t, existing.GenerateLabel(first, testNow))

	cmd, err := commands.NewGenerateLabelCommand("SHIP-1", "https://labels.example.com/SHIP-1-b.pdf", "PDF", "BC-2")
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewGenerateLabelCommandHandler(factory, testClock())
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	shipmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestGenerateLabelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := newTestShipment(t, "SHIP-1", "ORD-1")
	cmd, err := commands.NewGenerateLabelCommand("SHIP-1", "https://labels.example.com/SHIP-1.pdf", "", "BC-1")
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		shipmentRepo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewGenerateLabelCommandHandler(factory, testClock())
	label, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.DefaultLabelFormat, label.Format())
	assert.Equal(t, testNow, label.GeneratedAt())
	require.NotNil(t, existing.PendingLabel())
	uow.AssertExpectations(t)
}
