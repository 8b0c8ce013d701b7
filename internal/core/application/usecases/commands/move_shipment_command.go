package commands

import (
	"errors"
	"strings"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/guard"
)

var ErrMoveShipmentCommandIsNotConstructed = errors.New(
	"MoveShipmentCommand must be created via NewDispatchShipmentCommand or NewDeliverShipmentCommand",
)

// ShipmentMove selects which tracking event a MoveShipmentCommand appends.
type ShipmentMove int

const (
	MoveDispatch ShipmentMove = iota + 1
	MoveDeliver
)

// MoveShipmentCommand dispatches or delivers a shipment at an optional location.
type MoveShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.ID
	location   string
	move       ShipmentMove

	guard guard.ConstructorGuard
}

func NewDispatchShipmentCommand(shipmentID, location string) (MoveShipmentCommand, error) {
	return newMoveShipmentCommand(shipmentID, location, MoveDispatch)
}

func NewDeliverShipmentCommand(shipmentID, location string) (MoveShipmentCommand, error) {
	return newMoveShipmentCommand(shipmentID, location, MoveDeliver)
}

func newMoveShipmentCommand(shipmentID, location string, move ShipmentMove) (MoveShipmentCommand, error) {
	id, err := parseID("shipment_id", shipmentID)
	if err != nil {
		return MoveShipmentCommand{}, err
	}

	return MoveShipmentCommand{
		shipmentID: id,
		location:   strings.TrimSpace(location),
		move:       move,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c MoveShipmentCommand) Validate() error {
	return c.guard.Validate(ErrMoveShipmentCommandIsNotConstructed)
}

func (c MoveShipmentCommand) ShipmentID() kernel.ID { return c.shipmentID }
func (c MoveShipmentCommand) Location() string      { return c.location }
func (c MoveShipmentCommand) Move() ShipmentMove    { return c.move }
