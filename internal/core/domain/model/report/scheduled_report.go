package report

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/errs"
)

const ScheduleAggregateType = "scheduled_report"

var ErrScheduledReportIsNotConstructed = errors.New("ScheduledReport must be created via NewScheduledReport constructor")

// Definition describes what a schedule produces.
type Definition struct {
	Type   Type
	Name   string
	Format Format
}

func (d Definition) validate() error {
	var nameErr error
	if strings.TrimSpace(d.Name) == "" {
		nameErr = errs.NewValueIsRequiredError("report_name")
	}
	return errors.Join(d.Type.Validate(), d.Format.Validate(), nameErr)
}

// ScheduledReport is a recurring report request.
type ScheduledReport struct {
	id          kernel.ID
	definition  Definition
	frequency   Frequency
	nextRunDate time.Time
	lastRunDate *time.Time
	isActive    bool
	recipients  []string
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewScheduledReport creates an active schedule.
func NewScheduledReport(
	id kernel.ID,
	definition Definition,
	frequency Frequency,
	nextRunDate time.Time,
	recipients []string,
	now time.Time,
) (*ScheduledReport, error) {
	return RestoreScheduledReport(id, definition, frequency, nextRunDate, nil, true, recipients, now, now)
}

func RestoreScheduledReport(
	id kernel.ID,
	definition Definition,
	frequency Frequency,
	nextRunDate time.Time,
	lastRunDate *time.Time,
	isActive bool,
	recipients []string,
	createdAt time.Time,
	updatedAt time.Time,
) (*ScheduledReport, error) {
	var nextRunErr error
	if nextRunDate.IsZero() {
		nextRunErr = errs.NewValueIsRequiredError("next_run_date")
	}

	cleaned, recipientsErr := normalizeRecipients(recipients)
	if err := errors.Join(
		id.Validate(),
		definition.validate(),
		frequency.Validate(),
		nextRunErr,
		recipientsErr,
	); err != nil {
		return nil, err
	}

	definition.Name = strings.TrimSpace(definition.Name)
	return &ScheduledReport{
		id:            id,
		definition:    definition,
		frequency:     frequency,
		nextRunDate:   nextRunDate,
		lastRunDate:   lastRunDate,
		isActive:      isActive,
		recipients:    cleaned,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// ParseRecipients splits the stored comma-separated recipient list.
func ParseRecipients(joined string) []string {
	if strings.TrimSpace(joined) == "" {
		return nil
	}
	return strings.Split(joined, ",")
}

func normalizeRecipients(recipients []string) ([]string, error) {
	cleaned := make([]string, 0, len(recipients))
	var errsList []error
	for _, raw := range recipients {
		address := strings.TrimSpace(raw)
		if address == "" {
			continue
		}
		if _, err := mail.ParseAddress(address); err != nil {
			errsList = append(errsList, errs.NewValueIsInvalidErrorWithCause("email_recipients", err))
			continue
		}
		cleaned = append(cleaned, address)
	}
	return cleaned, errors.Join(errsList...)
}

func (s *ScheduledReport) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrScheduledReportIsNotConstructed
	}
	return nil
}

func (s *ScheduledReport) ID() kernel.ID           { return s.id }
func (s *ScheduledReport) Definition() Definition  { return s.definition }
func (s *ScheduledReport) Frequency() Frequency    { return s.frequency }
func (s *ScheduledReport) NextRunDate() time.Time  { return s.nextRunDate }
func (s *ScheduledReport) LastRunDate() *time.Time { return s.lastRunDate }
func (s *ScheduledReport) IsActive() bool          { return s.isActive }
func (s *ScheduledReport) CreatedAt() time.Time    { return s.createdAt }
func (s *ScheduledReport) UpdatedAt() time.Time    { return s.updatedAt }
func (s *ScheduledReport) AggregateType() string   { return ScheduleAggregateType }

func (s *ScheduledReport) Recipients() []string {
	recipients := make([]string, len(s.recipients))
	copy(recipients, s.recipients)
	return recipients
}

// JoinedRecipients is the comma-separated storage form.
func (s *ScheduledReport) JoinedRecipients() string {
	return strings.Join(s.recipients, ",")
}

func (s *ScheduledReport) LifecycleStatus() string {
	if s.isActive {
		return "ACTIVE"
	}
	return "INACTIVE"
}

func (s *ScheduledReport) Activate(now time.Time) {
	s.isActive = true
	s.updatedAt = now
}

func (s *ScheduledReport) Deactivate(now time.Time) {
	s.isActive = false
	s.updatedAt = now
}

// RunNow creates a report from the schedule's definition, requested by "System", and
// records the run time. next_run_date is left unchanged; the scheduled runner advances it.
func (s *ScheduledReport) RunNow(now time.Time) (*Report, error) {
	rep, err := Generate(s.definition.Type, s.definition.Name, s.definition.Format, SystemRequester, now)
	if err != nil {
		return nil, err
	}

	lastRun := now
	s.lastRunDate = &lastRun
	s.updatedAt = now
	return rep, nil
}

// IsDue reports whether an active schedule should run at now.
func (s *ScheduledReport) IsDue(now time.Time) bool {
	return s.isActive && !s.nextRunDate.After(now)
}

// Reschedule moves next_run_date forward. The new date must be after the current one.
func (s *ScheduledReport) Reschedule(next time.Time, now time.Time) error {
	if !next.After(s.nextRunDate) {
		return errs.NewValueIsInvalidErrorWithCause(
			"next_run_date",
			errors.New("next run date must move forward"),
		)
	}
	s.nextRunDate = next
	s.updatedAt = now
	return nil
}
