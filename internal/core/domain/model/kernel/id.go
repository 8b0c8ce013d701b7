package kernel

import (
	"fmt"
	"strings"

	"sellerops/internal/pkg/errs"

	"github.com/google/uuid"
)

// MaxIDLength bounds every natural identifier; it matches the varchar(100) id columns.
const MaxIDLength = 100

// ErrIDIsNotConstructed is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or GenerateID")

// ID is a natural string identifier such as "ORD-1" or "CANC-ORD-1".
// The zero value is invalid.
//
// Example:
//
//	id, err := kernel.NewID("ORD-1")
//	if err != nil {
//	    return err
//	}
type ID struct {
	value string
}

// NewID trims the raw value and checks it is present, printable and within MaxIDLength.
func NewID(raw string) (ID, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ID{}, errs.NewValueIsRequiredError("id")
	}
	if len(value) > MaxIDLength {
		return ID{}, errs.NewValueIsOutOfRangeError("id length", len(value), 1, MaxIDLength)
	}
	if strings.ContainsAny(value, "/?#\t\r\n") {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%q contains reserved characters", value))
	}

	return ID{value: value}, nil
}

// GenerateID builds "<prefix>-<random hex>" for records whose id is not supplied by the caller,
// such as tracking events.
func GenerateID(prefix string) ID {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	if prefix == "" {
		return ID{value: suffix}
	}
	return ID{value: prefix + "-" + suffix}
}

// DerivedID prefixes an existing id, e.g. DerivedID("CANC", orderID) == "CANC-ORD-1".
func DerivedID(prefix string, base ID) (ID, error) {
	if err := base.Validate(); err != nil {
		return ID{}, err
	}
	return NewID(prefix + "-" + base.value)
}

func (id ID) String() string {
	return id.value
}

func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

func (id ID) IsZero() bool {
	return id.value == ""
}

func (id ID) Validate() error {
	if id.value == "" {
		return ErrIDIsNotConstructed
	}
	return nil
}
