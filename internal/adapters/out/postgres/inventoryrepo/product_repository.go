// Package inventoryrepo stores products, their stock records and their listings.
package inventoryrepo

import (
	"context"

	"sellerops/internal/core/domain/model/inventory"
	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the product. A reused sku or fsn yields ObjectAlreadyExistsError.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *inventory.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.FromDatabase(err, "product", dto.SKU+" (fsn "+dto.FSN+")")
	}

	r.tracker.TrackAggregate(aggregate.SKU(), aggregate)
	return nil
}

// Update only persists the activation flag; product details are immutable here.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *inventory.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("sku = ?", dto.SKU).Updates(map[string]any{
		"is_active":  dto.IsActive,
		"updated_at": dto.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", dto.SKU)
	}

	r.tracker.TrackAggregate(aggregate.SKU(), aggregate)
	return nil
}

func (r *GormProductRepository) Get(ctx context.Context, sku kernel.ID) (*inventory.Product, error) {
	if err := sku.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "sku = ?", sku.String()).Error; err != nil {
		return nil, errs.FromDatabase(err, "product", sku.String())
	}
	return productToDomain(dto)
}
