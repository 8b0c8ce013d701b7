package report

import (
	"fmt"

	"sellerops/internal/pkg/errs"
)

type enum interface {
	~int
	String() string
}

func parseEnum[E enum](paramName, value string, values map[E]string) (E, error) {
	for e, str := range values {
		if int(e) != 0 && str == value {
			return e, nil
		}
	}
	var zero E
	return zero, errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%q is not a valid %s", value, paramName))
}

func validateEnum[E enum](paramName string, e E, values map[E]string) error {
	if _, ok := values[e]; !ok || int(e) == 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%d is not a valid %s", int(e), paramName))
	}
	return nil
}

func enumString[E enum](e E, values map[E]string) string {
	if str, ok := values[e]; ok {
		return str
	}
	return "UNKNOWN"
}

// Status is the generation state of a report.
type Status int

const (
	UnknownStatus Status = iota
	Pending
	InProgress
	Completed
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "UNKNOWN",
		Pending:       "PENDING",
		InProgress:    "IN_PROGRESS",
		Completed:     "COMPLETED",
		Failed:        "FAILED",
	}
}

func ParseStatus(value string) (Status, error) {
	return parseEnum("report status", value, getStatusStrings())
}

func (s Status) Validate() error { return validateEnum("report status", s, getStatusStrings()) }
func (s Status) String() string  { return enumString(s, getStatusStrings()) }

// Type is the business area a report covers.
type Type int

const (
	UnknownType Type = iota
	Sales
	Orders
	Inventory
	Returns
	Shipments
	Financial
	Performance
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType: "UNKNOWN",
		Sales:       "SALES",
		Orders:      "ORDERS",
		Inventory:   "INVENTORY",
		Returns:     "RETURNS",
		Shipments:   "SHIPMENTS",
		Financial:   "FINANCIAL",
		Performance: "PERFORMANCE",
	}
}

func ParseType(value string) (Type, error) {
	return parseEnum("report_type", value, getTypeStrings())
}

func (t Type) Validate() error { return validateEnum("report_type", t, getTypeStrings()) }
func (t Type) String() string  { return enumString(t, getTypeStrings()) }

// Format is the file format the generator produces.
type Format int

const (
	UnknownFormat Format = iota
	CSV
	XLSX
	PDF
	JSON
)

func getFormatStrings() map[Format]string {
	return map[Format]string{
		UnknownFormat: "UNKNOWN",
		CSV:           "CSV",
		XLSX:          "XLSX",
		PDF:           "PDF",
		JSON:          "JSON",
	}
}

func ParseFormat(value string) (Format, error) {
	return parseEnum("report_format", value, getFormatStrings())
}

func (f Format) Validate() error { return validateEnum("report_format", f, getFormatStrings()) }
func (f Format) String() string  { return enumString(f, getFormatStrings()) }

// Frequency is the cadence of a scheduled report.
type Frequency int

const (
	UnknownFrequency Frequency = iota
	Daily
	Weekly
	Monthly
	Quarterly
)

func getFrequencyStrings() map[Frequency]string {
	return map[Frequency]string{
		UnknownFrequency: "UNKNOWN",
		Daily:            "DAILY",
		Weekly:           "WEEKLY",
		Monthly:          "MONTHLY",
		Quarterly:        "QUARTERLY",
	}
}

func ParseFrequency(value string) (Frequency, error) {
	return parseEnum("frequency", value, getFrequencyStrings())
}

func (f Frequency) Validate() error { return validateEnum("frequency", f, getFrequencyStrings()) }
func (f Frequency) String() string  { return enumString(f, getFrequencyStrings()) }
