package returnsrepo

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/returns"
	"sellerops/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormReturnRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormReturnRepository(db *gorm.DB, tracker aggregateTracker) *GormReturnRepository {
	return &GormReturnRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormReturnRepository) Add(ctx context.Context, aggregate *returns.Return) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := returnFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.FromDatabase(err, "return", dto.ReturnID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormReturnRepository) Update(ctx context.Context, aggregate *returns.Return) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := returnFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ReturnDTO{}).Where("return_id = ?", dto.ReturnID).Updates(map[string]any{
		"status":     dto.Status,
		"updated_at": dto.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("return", dto.ReturnID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormReturnRepository) Get(ctx context.Context, id kernel.ID) (*returns.Return, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReturnDTO
	if err := r.db.WithContext(ctx).First(&dto, "return_id = ?", id.String()).Error; err != nil {
		return nil, errs.FromDatabase(err, "return", id.String())
	}
	return returnToDomain(dto)
}
