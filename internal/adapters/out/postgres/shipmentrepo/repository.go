package shipmentrepo

import (
	"context"
	"errors"
	"strings"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/shipment"
	"sellerops/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate kernel.Aggregate)
}

func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the shipment. A shipment id or tracking number already in use yields
// ObjectAlreadyExistsError.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	if err := db.Create(&dto).Error; err != nil {
		return errs.FromDatabase(err, "shipment", dto.ShipmentID)
	}

	if err := r.insertPending(db, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes status and delivery columns, then appends the pending tracking events
// and label. Stored events are never rewritten.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	result := db.Model(&ShipmentDTO{}).Where("shipment_id = ?", dto.ShipmentID).Updates(map[string]any{
		"status":               dto.Status,
		"actual_delivery_date": dto.ActualDeliveryDate,
		"updated_at":           dto.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment", dto.ShipmentID)
	}

	if err := r.insertPending(db, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.ID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.load(ctx, "shipment_id = ?", id.String(), "shipment")
}

func (r *GormShipmentRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*shipment.Shipment, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return nil, errs.NewValueIsRequiredError("tracking_number")
	}
	return r.load(ctx, "tracking_number = ?", trackingNumber, "shipment with tracking number")
}

func (r *GormShipmentRepository) load(ctx context.Context, query string, arg string, paramName string) (*shipment.Shipment, error) {
	db := r.db.WithContext(ctx)

	var dto ShipmentDTO
	if err := db.First(&dto, query, arg).Error; err != nil {
		return nil, errs.FromDatabase(err, paramName, arg)
	}

	var events []TrackingEventDTO
	if err := db.Where("shipment_id = ?", dto.ShipmentID).Order("event_date").Find(&events).Error; err != nil {
		return nil, err
	}

	var label *LabelDTO
	var labelDTO LabelDTO
	err := db.First(&labelDTO, "shipment_id = ?", dto.ShipmentID).Error
	switch {
	case err == nil:
		label = &labelDTO
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	return toDomain(dto, events, label)
}

func (r *GormShipmentRepository) insertPending(db *gorm.DB, aggregate *shipment.Shipment) error {
	pending := aggregate.PendingTrackingEvents()
	if len(pending) > 0 {
		events := make([]TrackingEventDTO, 0, len(pending))
		for _, e := range pending {
			events = append(events, eventFromDomain(e))
		}
		if err := db.Create(&events).Error; err != nil {
			return err
		}
	}

	if label := aggregate.PendingLabel(); label != nil {
		dto := labelFromDomain(aggregate.ID().String(), label)
		if err := db.Create(&dto).Error; err != nil {
			return errs.FromDatabase(err, "shipping label", dto.ShipmentID)
		}
	}

	aggregate.MarkPersisted()
	return nil
}
