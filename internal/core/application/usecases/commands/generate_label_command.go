package commands

import (
	"errors"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/guard"
)

var ErrGenerateLabelCommandIsNotConstructed = errors.New(
	"GenerateLabelCommand must be created via NewGenerateLabelCommand constructor",
)

type GenerateLabelCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.ID
	labelURL   string
	format     string
	barcode    string

	guard guard.ConstructorGuard
}

func NewGenerateLabelCommand(shipmentID, labelURL, format, barcode string) (GenerateLabelCommand, error) {
	id, err := parseID("shipment_id", shipmentID)
	if err != nil {
		return GenerateLabelCommand{}, err
	}

	return GenerateLabelCommand{
		shipmentID: id,
		labelURL:   labelURL,
		format:     format,
		barcode:    barcode,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c GenerateLabelCommand) Validate() error {
	return c.guard.Validate(ErrGenerateLabelCommandIsNotConstructed)
}

func (c GenerateLabelCommand) ShipmentID() kernel.ID { return c.shipmentID }
func (c GenerateLabelCommand) LabelURL() string      { return c.labelURL }
func (c GenerateLabelCommand) Format() string        { return c.format }
func (c GenerateLabelCommand) Barcode() string       { return c.barcode }
