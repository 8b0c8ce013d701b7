package commands

import (
	"errors"
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/order"
	"sellerops/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItemInput is one requested order line.
type OrderItemInput struct {
	SKU         string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  *decimal.Decimal
	HSNCode     string
}

// OrderInput carries the raw create-order request.
type OrderInput struct {
	OrderID         string
	OrderDate       time.Time
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	BillingAddress  string
	PaymentMethod   string
	TotalAmount     *decimal.Decimal
	Items           []OrderItemInput
}

type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.ID
	details     order.Details
	items       []order.Item
	totalAmount *decimal.Decimal

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(input OrderInput) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		totalAmount: input.TotalAmount,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(input.OrderID),
		cmd.setDetails(input),
		cmd.setItems(input.Items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

func (c CreateOrderCommand) TotalAmount() *decimal.Decimal {
	return c.totalAmount
}

func (c *CreateOrderCommand) setOrderID(raw string) error {
	id, err := parseID("order_id", raw)
	if err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setDetails(input OrderInput) error {
	address, err := kernel.NewAddress(input.ShippingAddress)
	if err != nil {
		return err
	}

	c.details = order.Details{
		OrderDate:       input.OrderDate,
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		ShippingAddress: address,
		BillingAddress:  input.BillingAddress,
		PaymentMethod:   input.PaymentMethod,
	}
	return nil
}

func (c *CreateOrderCommand) setItems(inputs []OrderItemInput) error {
	items := make([]order.Item, 0, len(inputs))
	var errsList []error
	for _, in := range inputs {
		item, err := order.NewItem(in.SKU, in.ProductName, in.Quantity, in.UnitPrice, in.TotalPrice, in.HSNCode)
		if err != nil {
			errsList = append(errsList, err)
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(errsList...); err != nil {
		return err
	}
	c.items = items
	return nil
}
