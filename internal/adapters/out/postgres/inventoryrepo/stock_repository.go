package inventoryrepo

import (
	"context"

	"sellerops/internal/core/domain/model/inventory"
	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormStockRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormStockRepository(db *gorm.DB, tracker aggregateTracker) *GormStockRepository {
	return &GormStockRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the stock record. A second record for the same sku yields ObjectAlreadyExistsError.
func (r *GormStockRepository) Add(ctx context.Context, aggregate *inventory.Stock) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := stockFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.FromDatabase(err, "inventory", dto.SKU)
	}

	r.tracker.TrackAggregate(aggregate.SKU(), aggregate)
	return nil
}

// Update rewrites the three quantities and last_updated.
func (r *GormStockRepository) Update(ctx context.Context, aggregate *inventory.Stock) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := stockFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&StockDTO{}).Where("sku = ?", dto.SKU).Updates(map[string]any{
		"available_quantity": dto.AvailableQuantity,
		"reserved_quantity":  dto.ReservedQuantity,
		"damaged_quantity":   dto.DamagedQuantity,
		"last_updated":       dto.LastUpdated,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("inventory", dto.SKU)
	}

	r.tracker.TrackAggregate(aggregate.SKU(), aggregate)
	return nil
}

func (r *GormStockRepository) Get(ctx context.Context, sku kernel.ID) (*inventory.Stock, error) {
	if err := sku.Validate(); err != nil {
		return nil, err
	}

	var dto StockDTO
	if err := r.db.WithContext(ctx).First(&dto, "sku = ?", sku.String()).Error; err != nil {
		return nil, errs.FromDatabase(err, "inventory", sku.String())
	}
	return stockToDomain(dto)
}
