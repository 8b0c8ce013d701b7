package inventory

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

// ListingStatus is the marketplace state of a listing.
type ListingStatus int

const (
	UnknownListingStatus ListingStatus = iota
	ListingActive
	ListingInactive
	ListingOutOfStock
	ListingDelisted
)

func getListingStatusStrings() map[ListingStatus]string {
	return map[ListingStatus]string{
		UnknownListingStatus: "UNKNOWN",
		ListingActive:        "ACTIVE",
		ListingInactive:      "INACTIVE",
		ListingOutOfStock:    "OUT_OF_STOCK",
		ListingDelisted:      "DELISTED",
	}
}

func ParseListingStatus(value string) (ListingStatus, error) {
	return parseEnum("listing status", value, getListingStatusStrings())
}

func (s ListingStatus) Validate() error {
	return validateEnum("listing status", s, getListingStatusStrings())
}

func (s ListingStatus) String() string { return enumString(s, getListingStatusStrings()) }
