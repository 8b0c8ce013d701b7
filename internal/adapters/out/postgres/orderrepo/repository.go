package orderrepo

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/order"
	"sellerops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate kernel.Aggregate)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order with its items. A duplicate order id yields ObjectAlreadyExistsError.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	if err := db.Create(&dto).Error; err != nil {
		return errs.FromDatabase(err, "order", dto.OrderID)
	}

	if items := itemsFromDomain(dto.OrderID, aggregate.Items()); len(items) > 0 {
		if err := db.Create(&items).Error; err != nil {
			return err
		}
	}

	if err := r.insertCancellations(db, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the mutable order columns and inserts cancellations recorded since load.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	result := db.Model(&OrderDTO{}).Where("order_id = ?", dto.OrderID).Updates(map[string]any{
		"status":       dto.Status,
		"total_amount": dto.TotalAmount,
		"updated_at":   dto.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.OrderID)
	}

	if err := r.insertCancellations(db, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)

	var dto OrderDTO
	if err := db.First(&dto, "order_id = ?", id.String()).Error; err != nil {
		return nil, errs.FromDatabase(err, "order", id.String())
	}

	var items []ItemDTO
	if err := db.Where("order_id = ?", dto.OrderID).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}

	var cancellations []CancellationDTO
	if err := db.Where("order_id = ?", dto.OrderID).Order("cancelled_at").Find(&cancellations).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, items, cancellations)
}

func (r *GormOrderRepository) insertCancellations(db *gorm.DB, aggregate *order.Order) error {
	for _, c := range aggregate.PendingCancellations() {
		dto := cancellationFromDomain(c)
		if err := db.Create(&dto).Error; err != nil {
			return errs.FromDatabase(err, "order cancellation", dto.CancellationID)
		}
	}
	aggregate.MarkCancellationsPersisted()
	return nil
}
