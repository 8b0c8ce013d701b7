package report

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	AggregateType = "report"

	// SystemRequester is recorded as requested_by for reports created from a schedule.
	SystemRequester = "System"

	// DefaultWindowDays is the length of the reporting window ending today.
	DefaultWindowDays = 30

	idTimeLayout = "20060102150405"
)

var ErrReportIsNotConstructed = errors.New("Report must be created via NewReport constructor")

// NewReportID synthesizes "RPT-<YYYYMMDDHHMMSS>-<8 hex>" from the creation time.
func NewReportID(now time.Time) kernel.ID {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	id, _ := kernel.NewID(fmt.Sprintf("RPT-%s-%s", now.UTC().Format(idTimeLayout), suffix))
	return id
}

// Report is the metadata of one generated (or to be generated) report file.
type Report struct {
	id          kernel.ID
	reportType  Type
	name        string
	format      Format
	status      Status
	startDate   time.Time
	endDate     time.Time
	fileURL     string
	fileSize    *int64
	requestedBy string
	createdAt   time.Time
	completedAt *time.Time

	isConstructed bool
}

// Generate creates an IN_PROGRESS report covering the last DefaultWindowDays days.
// An empty name defaults to "<TYPE> Report".
func Generate(reportType Type, name string, format Format, requestedBy string, now time.Time) (*Report, error) {
	if strings.TrimSpace(name) == "" {
		name = reportType.String() + " Report"
	}
	today := kernel.StartOfDay(now)

	return RestoreReport(
		NewReportID(now),
		reportType,
		name,
		format,
		InProgress,
		today.AddDate(0, 0, -DefaultWindowDays),
		today,
		"",
		nil,
		requestedBy,
		now,
		nil,
	)
}

func RestoreReport(
	id kernel.ID,
	reportType Type,
	name string,
	format Format,
	status Status,
	startDate time.Time,
	endDate time.Time,
	fileURL string,
	fileSize *int64,
	requestedBy string,
	createdAt time.Time,
	completedAt *time.Time,
) (*Report, error) {
	r := &Report{
		id:            id,
		reportType:    reportType,
		name:          strings.TrimSpace(name),
		format:        format,
		status:        status,
		startDate:     startDate,
		endDate:       endDate,
		fileURL:       fileURL,
		fileSize:      fileSize,
		requestedBy:   strings.TrimSpace(requestedBy),
		createdAt:     createdAt,
		completedAt:   completedAt,
		isConstructed: true,
	}

	var nameErr, requesterErr, windowErr error
	if r.name == "" {
		nameErr = errs.NewValueIsRequiredError("report_name")
	}
	if r.requestedBy == "" {
		requesterErr = errs.NewValueIsRequiredError("requested_by")
	}
	if endDate.Before(startDate) {
		windowErr = errs.NewValueIsInvalidErrorWithCause("end_date", errors.New("end_date is before start_date"))
	}

	if err := errors.Join(
		id.Validate(),
		reportType.Validate(),
		format.Validate(),
		status.Validate(),
		nameErr,
		requesterErr,
		windowErr,
	); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Report) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReportIsNotConstructed
	}
	return nil
}

func (r *Report) ID() kernel.ID           { return r.id }
func (r *Report) Type() Type              { return r.reportType }
func (r *Report) Name() string            { return r.name }
func (r *Report) Format() Format          { return r.format }
func (r *Report) Status() Status          { return r.status }
func (r *Report) StartDate() time.Time    { return r.startDate }
func (r *Report) EndDate() time.Time      { return r.endDate }
func (r *Report) FileURL() string         { return r.fileURL }
func (r *Report) FileSize() *int64        { return r.fileSize }
func (r *Report) RequestedBy() string     { return r.requestedBy }
func (r *Report) CreatedAt() time.Time    { return r.createdAt }
func (r *Report) CompletedAt() *time.Time { return r.completedAt }
func (r *Report) AggregateType() string   { return AggregateType }
func (r *Report) LifecycleStatus() string { return r.status.String() }

// Regenerate resets the report to IN_PROGRESS and drops the previous file.
func (r *Report) Regenerate() {
	r.status = InProgress
	r.fileURL = ""
	r.fileSize = nil
	r.completedAt = nil
}

// Complete records the generated file. It is called by the external generator.
func (r *Report) Complete(fileURL string, fileSize int64, now time.Time) error {
	fileURL = strings.TrimSpace(fileURL)
	if fileURL == "" {
		return errs.NewValueIsRequiredError("file_url")
	}
	if parsed, err := url.ParseRequestURI(fileURL); err != nil || parsed.Host == "" {
		return errs.NewValueIsInvalidErrorWithCause("file_url", err)
	}
	if fileSize < 0 {
		return errs.NewValueIsOutOfRangeError("file_size", fileSize, 0, "unbounded")
	}

	completedAt := now
	r.status = Completed
	r.fileURL = fileURL
	r.fileSize = &fileSize
	r.completedAt = &completedAt
	return nil
}

// Fail marks generation as failed and drops any file reference.
func (r *Report) Fail() {
	r.status = Failed
	r.fileURL = ""
	r.fileSize = nil
	r.completedAt = nil
}

// Download is the link handed out for a completed report.
type Download struct {
	ReportID string
	FileURL  string
	FileSize *int64
	Format   Format
}

// Download returns the file link. A report that is not COMPLETED yields an
// ObjectStateConflictError; a completed report without a file yields ObjectNotFoundError.
func (r *Report) Download() (Download, error) {
	if r.status != Completed {
		return Download{}, errs.NewObjectStateConflictError("report", r.id.String(), "report is not ready for download")
	}
	if r.fileURL == "" {
		return Download{}, errs.NewObjectNotFoundError("report file", r.id.String())
	}
	return Download{
		ReportID: r.id.String(),
		FileURL:  r.fileURL,
		FileSize: r.fileSize,
		Format:   r.format,
	}, nil
}
