package reportrepo

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/report"
	"sellerops/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormReportRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormReportRepository(db *gorm.DB, tracker aggregateTracker) *GormReportRepository {
	return &GormReportRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormReportRepository) Add(ctx context.Context, aggregate *report.Report) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := reportFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.FromDatabase(err, "report", dto.ReportID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes status and file columns. Nil file_size and completed_at are written
// as NULL so a regenerated report drops its previous file.
func (r *GormReportRepository) Update(ctx context.Context, aggregate *report.Report) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := reportFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ReportDTO{}).Where("report_id = ?", dto.ReportID).Updates(map[string]any{
		"status":       dto.Status,
		"file_url":     dto.FileURL,
		"file_size":    dto.FileSize,
		"completed_at": dto.CompletedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("report", dto.ReportID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormReportRepository) Get(ctx context.Context, id kernel.ID) (*report.Report, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReportDTO
	if err := r.db.WithContext(ctx).First(&dto, "report_id = ?", id.String()).Error; err != nil {
		return nil, errs.FromDatabase(err, "report", id.String())
	}
	return reportToDomain(dto)
}
