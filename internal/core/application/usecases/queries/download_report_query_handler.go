package queries

import (
	"context"

	"sellerops/internal/core/domain/model/report"
	"sellerops/internal/pkg/errs"

	"gorm.io/gorm"
)

type reportFileRow struct {
	ReportID string
	Status   string
	FileURL  string
	FileSize *int64
	Format   string
}

type DownloadReportQueryHandler struct {
	db *gorm.DB
}

func NewDownloadReportQueryHandler(db *gorm.DB) DownloadReportQueryHandler {
	return DownloadReportQueryHandler{db: db}
}

// Handle returns the file link of a COMPLETED report. Any other status yields
// ObjectStateConflictError; a completed report without a file yields ObjectNotFoundError.
func (h DownloadReportQueryHandler) Handle(
	ctx context.Context,
	query DownloadReportQuery,
) (DownloadReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return DownloadReportQueryResponse{}, err
	}

	var row reportFileRow
	id := query.ReportID().String()
	result := h.db.WithContext(ctx).Raw(`
		SELECT
			report_id,
			status,
			file_url,
			file_size,
			format
		FROM reports
		WHERE report_id = ?
	`, id).Scan(&row)
	if result.Error != nil {
		return DownloadReportQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return DownloadReportQueryResponse{}, errs.NewObjectNotFoundError("report", id)
	}

	if row.Status != report.Completed.String() {
		return DownloadReportQueryResponse{}, errs.NewObjectStateConflictError("report", id, "report is not ready for download")
	}
	if row.FileURL == "" {
		return DownloadReportQueryResponse{}, errs.NewObjectNotFoundError("report file", id)
	}

	return DownloadReportQueryResponse{
		ReportID: row.ReportID,
		FileURL:  row.FileURL,
		FileSize: row.FileSize,
		Format:   row.Format,
	}, nil
}
