package shipment

import (
	"fmt"

	"sellerops/internal/pkg/errs"
)

// Status is the lifecycle state of a shipment. Transitions are not guarded.
type Status int

const (
	Unknown Status = iota
	Created
	Packed
	ReadyToShip
	Shipped
	InTransit
	OutForDelivery
	Delivered
	Returned
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Created:        "CREATED",
		Packed:         "PACKED",
		ReadyToShip:    "READY_TO_SHIP",
		Shipped:        "SHIPPED",
		InTransit:      "IN_TRANSIT",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Returned:       "RETURNED",
		Cancelled:      "CANCELLED",
	}
}

func ParseStatus(value string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"shipment status",
		fmt.Errorf("%q is not a valid shipment status", value),
	)
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("shipment status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
