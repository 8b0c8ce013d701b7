package order

import (
	"errors"
	"strings"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is one order line. Items are immutable once created; the store assigns their
// numeric id, which returns reference through order_item_id.
type Item struct {
	id          int64
	sku         string
	productName string
	quantity    int
	unitPrice   decimal.Decimal
	totalPrice  decimal.Decimal
	hsnCode     string
}

// NewItem builds a line for a new order. When totalPrice is nil it defaults to
// unitPrice × quantity.
func NewItem(
	sku string,
	productName string,
	quantity int,
	unitPrice decimal.Decimal,
	totalPrice *decimal.Decimal,
	hsnCode string,
) (Item, error) {
	return RestoreItem(0, sku, productName, quantity, unitPrice, totalPrice, hsnCode)
}

// RestoreItem rehydrates a persisted line.
func RestoreItem(
	id int64,
	sku string,
	productName string,
	quantity int,
	unitPrice decimal.Decimal,
	totalPrice *decimal.Decimal,
	hsnCode string,
) (Item, error) {
	item := Item{
		id:          id,
		sku:         strings.TrimSpace(sku),
		productName: strings.TrimSpace(productName),
		quantity:    quantity,
		unitPrice:   unitPrice,
		hsnCode:     strings.TrimSpace(hsnCode),
	}

	var errsList []error
	if item.sku == "" {
		errsList = append(errsList, errs.NewValueIsRequiredError("sku"))
	}
	if item.productName == "" {
		errsList = append(errsList, errs.NewValueIsRequiredError("product_name"))
	}
	if quantity <= 0 {
		errsList = append(errsList, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded"))
	}
	errsList = append(errsList, kernel.ValidateAmount("unit_price", unitPrice))

	if totalPrice != nil {
		item.totalPrice = *totalPrice
	} else {
		item.totalPrice = kernel.RoundMoney(unitPrice.Mul(decimal.NewFromInt(int64(quantity))))
	}
	errsList = append(errsList, kernel.ValidateAmount("total_price", item.totalPrice))

	if err := errors.Join(errsList...); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (i Item) ID() int64 {
	return i.id
}

func (i Item) SKU() string {
	return i.sku
}

func (i Item) ProductName() string {
	return i.productName
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

func (i Item) TotalPrice() decimal.Decimal {
	return i.totalPrice
}

func (i Item) HSNCode() string {
	return i.hsnCode
}
