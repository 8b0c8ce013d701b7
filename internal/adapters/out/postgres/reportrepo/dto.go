// Package reportrepo persists report metadata and recurring report schedules.
package reportrepo

import (
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/report"
)

type ReportDTO struct {
	ReportID    string     `gorm:"column:report_id;primaryKey;size:100"`
	ReportType  string     `gorm:"column:report_type;size:32;not null"`
	ReportName  string     `gorm:"column:report_name;not null"`
	Format      string     `gorm:"column:format;size:8;not null"`
	Status      string     `gorm:"column:status;size:16;not null"`
	StartDate   time.Time  `gorm:"column:start_date;not null"`
	EndDate     time.Time  `gorm:"column:end_date;not null"`
	FileURL     string     `gorm:"column:file_url"`
	FileSize    *int64     `gorm:"column:file_size"`
	RequestedBy string     `gorm:"column:requested_by;not null"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime:false"`
	CompletedAt *time.Time `gorm:"column:completed_at"`
}

func (ReportDTO) TableName() string {
	return "reports"
}

// ScheduledReportDTO stores recipients as one comma-separated column.
type ScheduledReportDTO struct {
	ScheduleID      string     `gorm:"column:schedule_id;primaryKey;size:100"`
	ReportType      string     `gorm:"column:report_type;size:32;not null"`
	ReportName      string     `gorm:"column:report_name;not null"`
	Format          string     `gorm:"column:format;size:8;not null"`
	Frequency       string     `gorm:"column:frequency;size:16;not null"`
	NextRunDate     time.Time  `gorm:"column:next_run_date;index:idx_scheduled_reports_due,priority:2;not null"`
	LastRunDate     *time.Time `gorm:"column:last_run_date"`
	IsActive        bool       `gorm:"column:is_active;index:idx_scheduled_reports_due,priority:1;not null"`
	EmailRecipients string     `gorm:"column:email_recipients"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime:false"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (ScheduledReportDTO) TableName() string {
	return "scheduled_reports"
}

func Models() []any {
	return []any{&ReportDTO{}, &ScheduledReportDTO{}, &ReportMetricsDTO{}}
}

func reportFromDomain(r *report.Report) ReportDTO {
	return ReportDTO{
		ReportID:    r.ID().String(),
		ReportType:  r.Type().String(),
		ReportName:  r.Name(),
		Format:      r.Format().String(),
		Status:      r.Status().String(),
		StartDate:   r.StartDate(),
		EndDate:     r.EndDate(),
		FileURL:     r.FileURL(),
		FileSize:    r.FileSize(),
		RequestedBy: r.RequestedBy(),
		CreatedAt:   r.CreatedAt(),
		CompletedAt: r.CompletedAt(),
	}
}

func reportToDomain(dto ReportDTO) (*report.Report, error) {
	id, err := kernel.NewID(dto.ReportID)
	if err != nil {
		return nil, err
	}
	reportType, err := report.ParseType(dto.ReportType)
	if err != nil {
		return nil, err
	}
	format, err := report.ParseFormat(dto.Format)
	if err != nil {
		return nil, err
	}
	status, err := report.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return report.RestoreReport(id, reportType, dto.ReportName, format, status, dto.StartDate, dto.EndDate,
		dto.FileURL, dto.FileSize, dto.RequestedBy, dto.CreatedAt, dto.CompletedAt)
}

func scheduleFromDomain(s *report.ScheduledReport) ScheduledReportDTO {
	definition := s.Definition()
	return ScheduledReportDTO{
		ScheduleID:      s.ID().String(),
		ReportType:      definition.Type.String(),
		ReportName:      definition.Name,
		Format:          definition.Format.String(),
		Frequency:       s.Frequency().String(),
		NextRunDate:     s.NextRunDate(),
		LastRunDate:     s.LastRunDate(),
		IsActive:        s.IsActive(),
		EmailRecipients: s.JoinedRecipients(),
		CreatedAt:       s.CreatedAt(),
		UpdatedAt:       s.UpdatedAt(),
	}
}

func scheduleToDomain(dto ScheduledReportDTO) (*report.ScheduledReport, error) {
	id, err := kernel.NewID(dto.ScheduleID)
	if err != nil {
		return nil, err
	}
	reportType, err := report.ParseType(dto.ReportType)
	if err != nil {
		return nil, err
	}
	format, err := report.ParseFormat(dto.Format)
	if err != nil {
		return nil, err
	}
	frequency, err := report.ParseFrequency(dto.Frequency)
	if err != nil {
		return nil, err
	}

	return report.RestoreScheduledReport(
		id,
		report.Definition{Type: reportType, Name: dto.ReportName, Format: format},
		frequency,
		dto.NextRunDate,
		dto.LastRunDate,
		dto.IsActive,
		report.ParseRecipients(dto.EmailRecipients),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
