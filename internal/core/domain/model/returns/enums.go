package returns

import (
	"fmt"

	"sellerops/internal/pkg/errs"
)

// enum is shared by the text-persisted enumerations of this package.
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

// ReturnStatus is the lifecycle state of a Return.
type ReturnStatus int

const (
	UnknownReturnStatus ReturnStatus = iota
	ReturnInitiated
	ReturnApproved
	ReturnRejected
	ReturnPickedUp
	ReturnInTransit
	ReturnReceived
	ReturnRefunded
	ReturnCompleted
)

func getReturnStatusStrings() map[ReturnStatus]string {
	return map[ReturnStatus]string{
		UnknownReturnStatus: "UNKNOWN",
		ReturnInitiated:     "INITIATED",
		ReturnApproved:      "APPROVED",
		ReturnRejected:      "REJECTED",
		ReturnPickedUp:      "PICKED_UP",
		ReturnInTransit:     "IN_TRANSIT",
		ReturnReceived:      "RECEIVED",
		ReturnRefunded:      "REFUNDED",
		ReturnCompleted:     "COMPLETED",
	}
}

func ParseReturnStatus(value string) (ReturnStatus, error) {
	return parseEnum("return status", value, getReturnStatusStrings())
}

func (s ReturnStatus) Validate() error {
	return validateEnum("return status", s, getReturnStatusStrings())
}

func (s ReturnStatus) String() string {
	return enumString(s, getReturnStatusStrings())
}

// Reason classifies why the customer returned an item.
type Reason int

const (
	UnknownReason Reason = iota
	Defective
	WrongItem
	NotAsDescribed
	SizeIssue
	QualityIssue
	Damaged
	OtherReason
)

func getReasonStrings() map[Reason]string {
	return map[Reason]string{
		UnknownReason:  "UNKNOWN",
		Defective:      "DEFECTIVE",
		WrongItem:      "WRONG_ITEM",
		NotAsDescribed: "NOT_AS_DESCRIBED",
		SizeIssue:      "SIZE_ISSUE",
		QualityIssue:   "QUALITY_ISSUE",
		Damaged:        "DAMAGED",
		OtherReason:    "OTHER",
	}
}

func ParseReason(value string) (Reason, error) {
	return parseEnum("return_reason", value, getReasonStrings())
}

func (r Reason) Validate() error {
	return validateEnum("return_reason", r, getReasonStrings())
}

func (r Reason) String() string {
	return enumString(r, getReasonStrings())
}

// ReplacementStatus is the lifecycle state of a Replacement.
type ReplacementStatus int

const (
	UnknownReplacementStatus ReplacementStatus = iota
	ReplacementInitiated
	ReplacementApproved
	ReplacementRejected
	ReplacementDispatched
	ReplacementDelivered
	ReplacementCompleted
)

func getReplacementStatusStrings() map[ReplacementStatus]string {
	return map[ReplacementStatus]string{
		UnknownReplacementStatus: "UNKNOWN",
		ReplacementInitiated:     "INITIATED",
		ReplacementApproved:      "APPROVED",
		ReplacementRejected:      "REJECTED",
		ReplacementDispatched:    "DISPATCHED",
		ReplacementDelivered:     "DELIVERED",
		ReplacementCompleted:     "COMPLETED",
	}
}

func ParseReplacementStatus(value string) (ReplacementStatus, error) {
	return parseEnum("replacement status", value, getReplacementStatusStrings())
}

func (s ReplacementStatus) Validate() error {
	return validateEnum("replacement status", s, getReplacementStatusStrings())
}

func (s ReplacementStatus) String() string {
	return enumString(s, getReplacementStatusStrings())
}

// RefundStatus is the lifecycle state of a Refund transaction.
type RefundStatus int

const (
	UnknownRefundStatus RefundStatus = iota
	RefundPending
	RefundProcessed
	RefundCompleted
	RefundFailed
)

func getRefundStatusStrings() map[RefundStatus]string {
	return map[RefundStatus]string{
		UnknownRefundStatus: "UNKNOWN",
		RefundPending:       "PENDING",
		RefundProcessed:     "PROCESSED",
		RefundCompleted:     "COMPLETED",
		RefundFailed:        "FAILED",
	}
}

func ParseRefundStatus(value string) (RefundStatus, error) {
	return parseEnum("refund_status", value, getRefundStatusStrings())
}

func (s RefundStatus) Validate() error {
	return validateEnum("refund_status", s, getRefundStatusStrings())
}

func (s RefundStatus) String() string {
	return enumString(s, getRefundStatusStrings())
}

// RefundMethod is how money goes back to the customer.
type RefundMethod int

const (
	UnknownRefundMethod RefundMethod = iota
	OriginalPayment
	Wallet
	BankTransfer
)

func getRefundMethodStrings() map[RefundMethod]string {
	return map[RefundMethod]string{
		UnknownRefundMethod: "UNKNOWN",
		OriginalPayment:     "ORIGINAL_PAYMENT",
		Wallet:              "WALLET",
		BankTransfer:        "BANK_TRANSFER",
	}
}

func ParseRefundMethod(value string) (RefundMethod, error) {
	return parseEnum("refund_method", value, getRefundMethodStrings())
}

func (m RefundMethod) Validate() error {
	return validateEnum("refund_method", m, getRefundMethodStrings())
}

func (m RefundMethod) String() string {
	return enumString(m, getRefundMethodStrings())
}
