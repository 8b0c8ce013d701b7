package shipment

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"sellerops/internal/pkg/errs"
)

// DefaultLabelFormat is used when a label is generated without an explicit format.
const DefaultLabelFormat = "PDF"

// Label is the shipping label of a shipment. A shipment has at most one.
type Label struct {
	url         string
	format      string
	barcode     string
	generatedAt time.Time
}

func NewLabel(labelURL, format, barcode string, generatedAt time.Time) (Label, error) {
	label := Label{
		url:         strings.TrimSpace(labelURL),
		format:      strings.ToUpper(strings.TrimSpace(format)),
		barcode:     strings.TrimSpace(barcode),
		generatedAt: generatedAt,
	}
	if label.format == "" {
		label.format = DefaultLabelFormat
	}

	var urlErr, barcodeErr error
	if label.url == "" {
		urlErr = errs.NewValueIsRequiredError("label_url")
	} else if parsed, err := url.ParseRequestURI(label.url); err != nil || parsed.Host == "" {
		urlErr = errs.NewValueIsInvalidErrorWithCause("label_url", err)
	}
	if label.barcode == "" {
		barcodeErr = errs.NewValueIsRequiredError("barcode")
	}
	if err := errors.Join(urlErr, barcodeErr); err != nil {
		return Label{}, err
	}

	return label, nil
}

func (l Label) URL() string {
	return l.url
}

func (l Label) Format() string {
	return l.format
}

func (l Label) Barcode() string {
	return l.barcode
}

func (l Label) GeneratedAt() time.Time {
	return l.generatedAt
}
