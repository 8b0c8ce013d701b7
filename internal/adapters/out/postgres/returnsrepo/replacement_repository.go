package returnsrepo

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/returns"
	"sellerops/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormReplacementRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormReplacementRepository(db *gorm.DB, tracker aggregateTracker) *GormReplacementRepository {
	return &GormReplacementRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the replacement. The unique index on return_id rejects a second
// replacement for the same return with ObjectAlreadyExistsError.
func (r *GormReplacementRepository) Add(ctx context.Context, aggregate *returns.Replacement) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := replacementFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.FromDatabase(err, "replacement", dto.ReplacementID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormReplacementRepository) Update(ctx context.Context, aggregate *returns.Replacement) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := replacementFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ReplacementDTO{}).
		Where("replacement_id = ?", dto.ReplacementID).
		Updates(map[string]any{
			"status":      dto.Status,
			"tracking_id": dto.TrackingID,
			"updated_at":  dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("replacement", dto.ReplacementID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormReplacementRepository) Get(ctx context.Context, id kernel.ID) (*returns.Replacement, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReplacementDTO
	if err := r.db.WithContext(ctx).First(&dto, "replacement_id = ?", id.String()).Error; err != nil {
		return nil, errs.FromDatabase(err, "replacement", id.String())
	}
	return replacementToDomain(dto)
}

func (r *GormReplacementRepository) ExistsForReturn(ctx context.Context, returnID kernel.ID) (bool, error) {
	if err := returnID.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&ReplacementDTO{}).
		Where("return_id = ?", returnID.String()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
