package returns

import (
	"errors"
	"time"

	"sellerops/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

const RefundAggregateType = "refund"

var ErrRefundIsNotConstructed = errors.New("Refund must be created via NewRefund constructor")

// Refund is one money-back transaction against a return.
type Refund struct {
	transactionID   kernel.ID
	returnID        kernel.ID
	amount          decimal.Decimal
	method          RefundMethod
	status          RefundStatus
	transactionDate time.Time
	completedDate   *time.Time

	isConstructed bool
}

// NewRefund creates a PENDING refund. The amount is not capped by the return's refund amount.
func NewRefund(
	transactionID kernel.ID,
	ret *Return,
	amount decimal.Decimal,
	method RefundMethod,
	now time.Time,
) (*Refund, error) {
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return RestoreRefund(transactionID, ret.ID(), amount, method, RefundPending, now, nil)
}

func RestoreRefund(
	transactionID kernel.ID,
	returnID kernel.ID,
	amount decimal.Decimal,
	method RefundMethod,
	status RefundStatus,
	transactionDate time.Time,
	completedDate *time.Time,
) (*Refund, error) {
	if err := errors.Join(
		transactionID.Validate(),
		returnID.Validate(),
		kernel.ValidateAmount("refund_amount", amount),
		method.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Refund{
		transactionID:   transactionID,
		returnID:        returnID,
		amount:          amount,
		method:          method,
		status:          status,
		transactionDate: transactionDate,
		completedDate:   completedDate,
		isConstructed:   true,
	}, nil
}

func (r *Refund) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRefundIsNotConstructed
	}
	return nil
}

func (r *Refund) TransactionID() kernel.ID   { return r.transactionID }
func (r *Refund) ReturnID() kernel.ID        { return r.returnID }
func (r *Refund) Amount() decimal.Decimal    { return r.amount }
func (r *Refund) Method() RefundMethod       { return r.method }
func (r *Refund) Status() RefundStatus       { return r.status }
func (r *Refund) TransactionDate() time.Time { return r.transactionDate }
func (r *Refund) CompletedDate() *time.Time  { return r.completedDate }

func (r *Refund) AggregateType() string   { return RefundAggregateType }
func (r *Refund) LifecycleStatus() string { return r.status.String() }

func (r *Refund) Process() {
	r.status = RefundProcessed
}

// Complete sets COMPLETED and stamps the completion date.
func (r *Refund) Complete(now time.Time) {
	completedAt := now
	r.status = RefundCompleted
	r.completedDate = &completedAt
}
