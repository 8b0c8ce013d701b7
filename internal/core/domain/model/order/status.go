package order

import (
	"fmt"

	"sellerops/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	APPROVED ─> PACKED ─> READY_TO_DISPATCH ─> SHIPPED ─> DELIVERED ─> RETURNED
//
// CANCELLED is reachable from any state. The order lifecycle does not guard transitions;
// every operation sets its target status unconditionally.
type Status int

const (
	// Unknown catches uninitialised values and is never persisted.
	Unknown Status = iota
	Approved
	Packed
	ReadyToDispatch
	Shipped
	Delivered
	Cancelled
	Returned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "UNKNOWN",
		Approved:        "APPROVED",
		Packed:          "PACKED",
		ReadyToDispatch: "READY_TO_DISPATCH",
		Shipped:         "SHIPPED",
		Delivered:       "DELIVERED",
		Cancelled:       "CANCELLED",
		Returned:        "RETURNED",
	}
}

// ParseStatus converts the persisted text form back into a Status.
// Unrecognised values are rejected so corrupted rows never rehydrate silently.
func ParseStatus(value string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"order status",
		fmt.Errorf("%q is not a valid order status", value),
	)
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("order status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// CancelledBy identifies who requested a cancellation.
type CancelledBy int

const (
	UnknownActor CancelledBy = iota
	Seller
	Customer
)

func getCancelledByStrings() map[CancelledBy]string {
	return map[CancelledBy]string{
		UnknownActor: "UNKNOWN",
		Seller:       "SELLER",
		Customer:     "CUSTOMER",
	}
}

// ParseCancelledBy accepts SELLER or CUSTOMER; an empty value defaults to SELLER.
func ParseCancelledBy(value string) (CancelledBy, error) {
	if value == "" {
		return Seller, nil
	}
	for actor, str := range getCancelledByStrings() {
		if actor != UnknownActor && str == value {
			return actor, nil
		}
	}
	return UnknownActor, errs.NewValueIsInvalidErrorWithCause(
		"cancelled_by",
		fmt.Errorf("%q is not one of SELLER, CUSTOMER", value),
	)
}

func (c CancelledBy) Validate() error {
	if c != Seller && c != Customer {
		return errs.NewValueIsInvalidErrorWithCause("cancelled_by", fmt.Errorf("%d is not a valid actor", c))
	}
	return nil
}

func (c CancelledBy) String() string {
	if str, ok := getCancelledByStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}
