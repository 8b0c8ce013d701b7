package kernel

import (
	"strings"

	"sellerops/internal/pkg/errs"
)

const maxAddressLength = 1000

// Address is a free-form postal address (shipping, pickup or delivery address).
type Address struct {
	text string
}

func NewAddress(raw string) (Address, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Address{}, errs.NewValueIsRequiredError("address")
	}
	if len(text) > maxAddressLength {
		return Address{}, errs.NewValueIsOutOfRangeError("address length", len(text), 1, maxAddressLength)
	}
	return Address{text: text}, nil
}

func (a Address) String() string {
	return a.text
}

func (a Address) IsZero() bool {
	return a.text == ""
}

func (a Address) Validate() error {
	if a.text == "" {
		return errs.NewValueIsRequiredError("address")
	}
	return nil
}
