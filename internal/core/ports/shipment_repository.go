package ports

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/shipment"
)

// ShipmentRepository persists shipments. Tracking events are only ever inserted.
type ShipmentRepository interface {
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	Update(ctx context.Context, aggregate *shipment.Shipment) error

	Get(ctx context.Context, id kernel.ID) (*shipment.Shipment, error)

	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*shipment.Shipment, error)
}

type CourierPartnerRepository interface {
	Add(ctx context.Context, aggregate *shipment.CourierPartner) error

	Update(ctx context.Context, aggregate *shipment.CourierPartner) error

	Get(ctx context.Context, code kernel.ID) (*shipment.CourierPartner, error)
}
