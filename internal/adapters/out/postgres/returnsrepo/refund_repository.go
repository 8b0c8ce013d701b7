package returnsrepo

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/returns"
	"sellerops/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormRefundRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormRefundRepository(db *gorm.DB, tracker aggregateTracker) *GormRefundRepository {
	return &GormRefundRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormRefundRepository) Add(ctx context.Context, aggregate *returns.Refund) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := refundFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.FromDatabase(err, "refund transaction", dto.TransactionID)
	}

	r.tracker.TrackAggregate(aggregate.TransactionID(), aggregate)
	return nil
}

func (r *GormRefundRepository) Update(ctx context.Context, aggregate *returns.Refund) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := refundFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RefundDTO{}).
		Where("transaction_id = ?", dto.TransactionID).
		Updates(map[string]any{
			"status":         dto.Status,
			"completed_date": dto.CompletedDate,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("refund transaction", dto.TransactionID)
	}

	r.tracker.TrackAggregate(aggregate.TransactionID(), aggregate)
	return nil
}

func (r *GormRefundRepository) Get(ctx context.Context, transactionID kernel.ID) (*returns.Refund, error) {
	if err := transactionID.Validate(); err != nil {
		return nil, err
	}

	var dto RefundDTO
	if err := r.db.WithContext(ctx).First(&dto, "transaction_id = ?", transactionID.String()).Error; err != nil {
		return nil, errs.FromDatabase(err, "refund transaction", transactionID.String())
	}
	return refundToDomain(dto)
}
