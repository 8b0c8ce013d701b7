package shipmentrepo

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/shipment"
	"sellerops/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormCourierPartnerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormCourierPartnerRepository(db *gorm.DB, tracker aggregateTracker) *GormCourierPartnerRepository {
	return &GormCourierPartnerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the partner. A reused code or name yields ObjectAlreadyExistsError.
func (r *GormCourierPartnerRepository) Add(ctx context.Context, aggregate *shipment.CourierPartner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := partnerFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.FromDatabase(err, "courier partner", dto.PartnerCode+" ("+dto.PartnerName+")")
	}

	r.tracker.TrackAggregate(aggregate.Code(), aggregate)
	return nil
}

func (r *GormCourierPartnerRepository) Update(ctx context.Context, aggregate *shipment.CourierPartner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := partnerFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CourierPartnerDTO{}).
		Where("partner_code = ?", dto.PartnerCode).
		Updates(map[string]any{
			"is_active":  dto.IsActive,
			"updated_at": dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier partner", dto.PartnerCode)
	}

	r.tracker.TrackAggregate(aggregate.Code(), aggregate)
	return nil
}

func (r *GormCourierPartnerRepository) Get(ctx context.Context, code kernel.ID) (*shipment.CourierPartner, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto CourierPartnerDTO
	if err := r.db.WithContext(ctx).First(&dto, "partner_code = ?", code.String()).Error; err != nil {
		return nil, errs.FromDatabase(err, "courier partner", code.String())
	}
	return partnerToDomain(dto)
}
