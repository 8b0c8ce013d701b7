package report

import (
	"errors"
	"maps"
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrMetricsIsNotConstructed = errors.New("Metrics must be created via NewMetrics constructor")

// Metrics records how a report was produced. A report has at most one and it is never changed.
type Metrics struct {
	reportID       kernel.ID
	totalRecords   int64
	processingTime decimal.Decimal
	dataRangeStart time.Time
	dataRangeEnd   time.Time
	filtersApplied map[string]any
	createdAt      time.Time

	isConstructed bool
}

// MetricsValues are the measured fields. ProcessingTime is in seconds; FiltersApplied is optional.
type MetricsValues struct {
	TotalRecords   int64
	ProcessingTime decimal.Decimal
	DataRangeStart time.Time
	DataRangeEnd   time.Time
	FiltersApplied map[string]any
}

func NewMetrics(reportID kernel.ID, values MetricsValues, now time.Time) (*Metrics, error) {
	var recordsErr, rangeErr error
	if values.TotalRecords < 0 {
		recordsErr = errs.NewValueIsOutOfRangeError("total_records", values.TotalRecords, 0, "unbounded")
	}
	switch {
	case values.DataRangeStart.IsZero():
		rangeErr = errs.NewValueIsRequiredError("data_range_start")
	case values.DataRangeEnd.IsZero():
		rangeErr = errs.NewValueIsRequiredError("data_range_end")
	case values.DataRangeEnd.Before(values.DataRangeStart):
		rangeErr = errs.NewValueIsInvalidErrorWithCause("data_range_end", errors.New("range end is before range start"))
	}
	if err := errors.Join(
		reportID.Validate(),
		recordsErr,
		kernel.ValidateAmount("processing_time", values.ProcessingTime),
		rangeErr,
	); err != nil {
		return nil, err
	}

	return &Metrics{
		reportID:       reportID,
		totalRecords:   values.TotalRecords,
		processingTime: values.ProcessingTime,
		dataRangeStart: values.DataRangeStart,
		dataRangeEnd:   values.DataRangeEnd,
		filtersApplied: maps.Clone(values.FiltersApplied),
		createdAt:      now,
		isConstructed:  true,
	}, nil
}

func (m *Metrics) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMetricsIsNotConstructed
	}
	return nil
}

func (m *Metrics) ReportID() kernel.ID             { return m.reportID }
func (m *Metrics) TotalRecords() int64             { return m.totalRecords }
func (m *Metrics) ProcessingTime() decimal.Decimal { return m.processingTime }
func (m *Metrics) DataRangeStart() time.Time       { return m.dataRangeStart }
func (m *Metrics) DataRangeEnd() time.Time         { return m.dataRangeEnd }
func (m *Metrics) CreatedAt() time.Time            { return m.createdAt }

func (m *Metrics) FiltersApplied() map[string]any {
	return maps.Clone(m.filtersApplied)
}
