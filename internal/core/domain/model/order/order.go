package order

import (
	"errors"
	"strings"
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// AggregateType names orders in lifecycle events.
const AggregateType = "order"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Details groups the descriptive order attributes that take no part in the lifecycle.
type Details struct {
	OrderDate       time.Time
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress kernel.Address
	BillingAddress  string
	PaymentMethod   string
}

func (d Details) validate() error {
	var errsList []error
	if d.OrderDate.IsZero() {
		errsList = append(errsList, errs.NewValueIsRequiredError("order_date"))
	}
	if strings.TrimSpace(d.CustomerName) == "" {
		errsList = append(errsList, errs.NewValueIsRequiredError("customer_name"))
	}
	if strings.TrimSpace(d.PaymentMethod) == "" {
		errsList = append(errsList, errs.NewValueIsRequiredError("payment_method"))
	}
	errsList = append(errsList, d.ShippingAddress.Validate())
	return errors.Join(errsList...)
}

// Order is the aggregate root of the order lifecycle. It owns its items and the
// cancellations recorded against it.
//
// Order follows these invariants:
//   - The id is a natural, immutable identifier
//   - total_amount is never negative
//   - At most one cancellation exists, identified by "CANC-<order_id>"
type Order struct {
	id            kernel.ID
	details       Details
	items         []Item
	totalAmount   decimal.Decimal
	status        Status
	cancellations []*Cancellation

	// pendingCancellations holds cancellations created since the order was loaded;
	// the repository inserts only these.
	pendingCancellations []*Cancellation

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates an APPROVED order. When totalAmount is nil it is the sum of the
// item totals.
//
// Example:
//
//	item, _ := order.NewItem("SKU-1", "Kettle", 2, decimal.NewFromInt(2500), nil, "")
//	o, err := order.NewOrder(id, details, []order.Item{item}, nil, clock.Now())
func NewOrder(
	id kernel.ID,
	details Details,
	items []Item,
	totalAmount *decimal.Decimal,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Approved,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setDetails(details),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	total := sumItems(items)
	if totalAmount != nil {
		total = *totalAmount
	}
	if err := o.setTotalAmount(total); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rehydrates an order from persistence without applying creation defaults.
func RestoreOrder(
	id kernel.ID,
	details Details,
	items []Item,
	totalAmount decimal.Decimal,
	status Status,
	cancellations []*Cancellation,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		cancellations: cancellations,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setDetails(details),
		o.setItems(items),
		o.setTotalAmount(totalAmount),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) Details() Details {
	return o.details
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Item finds a line by its stored id.
func (o *Order) Item(itemID int64) (Item, bool) {
	for _, item := range o.items {
		if item.ID() == itemID {
			return item, true
		}
	}
	return Item{}, false
}

func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

func (o *Order) Status() Status {
	return o.status
}

// Cancellations returns persisted and pending cancellations.
func (o *Order) Cancellations() []*Cancellation {
	all := make([]*Cancellation, 0, len(o.cancellations)+len(o.pendingCancellations))
	all = append(all, o.cancellations...)
	return append(all, o.pendingCancellations...)
}

// PendingCancellations returns the cancellations not yet written to the store.
func (o *Order) PendingCancellations() []*Cancellation {
	return o.pendingCancellations
}

// MarkCancellationsPersisted moves pending cancellations to the persisted set.
func (o *Order) MarkCancellationsPersisted() {
	o.cancellations = append(o.cancellations, o.pendingCancellations...)
	o.pendingCancellations = nil
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *Order) AggregateType() string {
	return AggregateType
}

func (o *Order) LifecycleStatus() string {
	return o.status.String()
}

// Cancel records a cancellation and moves the order to CANCELLED regardless of its
// current status.
//
// refundAmount defaults to the order total and an UnknownActor defaults to Seller.
// A second cancellation of the same order fails with an ObjectAlreadyExistsError and
// leaves the order untouched.
func (o *Order) Cancel(
	reason string,
	cancelledBy CancelledBy,
	refundAmount *decimal.Decimal,
	now time.Time,
) (*Cancellation, error) {
	cancellationID, err := CancellationIDFor(o.id)
	if err != nil {
		return nil, err
	}

	for _, existing := range o.Cancellations() {
		if existing.ID().IsEqual(cancellationID) {
			return nil, errs.NewObjectAlreadyExistsError("order cancellation", cancellationID.String())
		}
	}

	if cancelledBy == UnknownActor {
		cancelledBy = Seller
	}
	amount := o.totalAmount
	if refundAmount != nil {
		amount = *refundAmount
	}

	cancellation, err := RestoreCancellation(cancellationID, o.id, reason, cancelledBy, amount, now)
	if err != nil {
		return nil, err
	}

	o.pendingCancellations = append(o.pendingCancellations, cancellation)
	o.changeStatus(Cancelled, now)
	return cancellation, nil
}

// Dispatch moves the order to READY_TO_DISPATCH. No prior status is required.
func (o *Order) Dispatch(now time.Time) {
	o.changeStatus(ReadyToDispatch, now)
}

func (o *Order) changeStatus(status Status, now time.Time) {
	o.status = status
	o.updatedAt = now
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDetails(details Details) error {
	if err := details.validate(); err != nil {
		return err
	}
	details.CustomerName = strings.TrimSpace(details.CustomerName)
	details.PaymentMethod = strings.TrimSpace(details.PaymentMethod)
	o.details = details
	return nil
}

func (o *Order) setItems(items []Item) error {
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setTotalAmount(amount decimal.Decimal) error {
	if err := kernel.ValidateAmount("total_amount", amount); err != nil {
		return err
	}
	o.totalAmount = amount
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func sumItems(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.TotalPrice())
	}
	return total
}
