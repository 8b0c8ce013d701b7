package commands

import (
	"errors"
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/shipment"
	"sellerops/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

type ShipmentInput struct {
	ShipmentID           string
	OrderID              string
	TrackingNumber       string
	CourierPartner       string
	ShipmentDate         time.Time
	ExpectedDeliveryDate time.Time
	PickupAddress        string
	DeliveryAddress      string
	Weight               decimal.Decimal
	Dimensions           string
	ShippingCharges      decimal.Decimal
}

type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID     kernel.ID
	orderID        kernel.ID
	trackingNumber string
	details        shipment.Details

	guard guard.ConstructorGuard
}

func NewCreateShipmentCommand(input ShipmentInput) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		trackingNumber: input.TrackingNumber,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(input.ShipmentID, input.OrderID),
		cmd.setDetails(input),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

func (c CreateShipmentCommand) ShipmentID() kernel.ID     { return c.shipmentID }
func (c CreateShipmentCommand) OrderID() kernel.ID        { return c.orderID }
func (c CreateShipmentCommand) TrackingNumber() string    { return c.trackingNumber }
func (c CreateShipmentCommand) Details() shipment.Details { return c.details }

func (c *CreateShipmentCommand) setIDs(shipmentID, orderID string) error {
	sID, shipmentErr := parseID("shipment_id", shipmentID)
	oID, orderErr := parseID("order_id", orderID)
	if err := errors.Join(shipmentErr, orderErr); err != nil {
		return err
	}
	c.shipmentID = sID
	c.orderID = oID
	return nil
}

func (c *CreateShipmentCommand) setDetails(input ShipmentInput) error {
	pickup, pickupErr := kernel.NewAddress(input.PickupAddress)
	delivery, deliveryErr := kernel.NewAddress(input.DeliveryAddress)
	if err := errors.Join(pickupErr, deliveryErr); err != nil {
		return err
	}

	c.details = shipment.Details{
		CourierPartner:       input.CourierPartner,
		ShipmentDate:         input.ShipmentDate,
		ExpectedDeliveryDate: input.ExpectedDeliveryDate,
		PickupAddress:        pickup,
		DeliveryAddress:      delivery,
		Weight:               input.Weight,
		Dimensions:           input.Dimensions,
		ShippingCharges:      input.ShippingCharges,
	}
	return nil
}
