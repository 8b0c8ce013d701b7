package reportrepo

import (
	"context"
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/report"
	"sellerops/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormScheduledReportRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormScheduledReportRepository(db *gorm.DB, tracker aggregateTracker) *GormScheduledReportRepository {
	return &GormScheduledReportRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormScheduledReportRepository) Add(ctx context.Context, aggregate *report.ScheduledReport) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := scheduleFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.FromDatabase(err, "scheduled report", dto.ScheduleID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormScheduledReportRepository) Update(ctx context.Context, aggregate *report.ScheduledReport) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := scheduleFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ScheduledReportDTO{}).
		Where("schedule_id = ?", dto.ScheduleID).
		Updates(map[string]any{
			"next_run_date": dto.NextRunDate,
			"last_run_date": dto.LastRunDate,
			"is_active":     dto.IsActive,
			"updated_at":    dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("scheduled report", dto.ScheduleID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormScheduledReportRepository) Get(ctx context.Context, id kernel.ID) (*report.ScheduledReport, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ScheduledReportDTO
	if err := r.db.WithContext(ctx).First(&dto, "schedule_id = ?", id.String()).Error; err != nil {
		return nil, errs.FromDatabase(err, "scheduled report", id.String())
	}
	return scheduleToDomain(dto)
}

// GetAllDue returns active schedules with next_run_date <= now, earliest first.
func (r *GormScheduledReportRepository) GetAllDue(ctx context.Context, now time.Time) ([]*report.ScheduledReport, error) {
	var dtos []ScheduledReportDTO
	if err := r.db.WithContext(ctx).
		Where("is_active = ? AND next_run_date <= ?", true, now).
		Order("next_run_date, schedule_id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	schedules := make([]*report.ScheduledReport, 0, len(dtos))
	for _, dto := range dtos {
		schedule, err := scheduleToDomain(dto)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}
	return schedules, nil
}
