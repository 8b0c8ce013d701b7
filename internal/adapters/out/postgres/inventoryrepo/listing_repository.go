package inventoryrepo

import (
	"context"

	"sellerops/internal/core/domain/model/inventory"
	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormListingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormListingRepository(db *gorm.DB, tracker aggregateTracker) *GormListingRepository {
	return &GormListingRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormListingRepository) Add(ctx context.Context, aggregate *inventory.Listing) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := listingFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.FromDatabase(err, "listing", dto.ListingID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists the listing status.
func (r *GormListingRepository) Update(ctx context.Context, aggregate *inventory.Listing) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := listingFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ListingDTO{}).Where("listing_id = ?", dto.ListingID).Updates(map[string]any{
		"listing_status": dto.ListingStatus,
		"updated_at":     dto.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("listing", dto.ListingID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormListingRepository) Get(ctx context.Context, id kernel.ID) (*inventory.Listing, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ListingDTO
	if err := r.db.WithContext(ctx).First(&dto, "listing_id = ?", id.String()).Error; err != nil {
		return nil, errs.FromDatabase(err, "listing", id.String())
	}
	return listingToDomain(dto)
}
