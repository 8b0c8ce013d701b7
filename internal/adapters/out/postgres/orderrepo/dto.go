// Package orderrepo maps the order aggregate, its items and its cancellations to the
// orders, order_items and order_cancellations tables.
package orderrepo

import (
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is a row of the orders table.
type OrderDTO struct {
	OrderID         string          `gorm:"column:order_id;primaryKey;size:100"`
	OrderDate       time.Time       `gorm:"column:order_date;not null"`
	CustomerName    string          `gorm:"column:customer_name;not null"`
	CustomerEmail   string          `gorm:"column:customer_email"`
	CustomerPhone   string          `gorm:"column:customer_phone"`
	ShippingAddress string          `gorm:"column:shipping_address;not null"`
	BillingAddress  string          `gorm:"column:billing_address"`
	PaymentMethod   string          `gorm:"column:payment_method;not null"`
	TotalAmount     decimal.Decimal `gorm:"column:total_amount;type:numeric(12,2);not null"`
	Status          string          `gorm:"column:status;size:32;index;not null"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime:false"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is a row of order_items. The id is assigned by the store.
type ItemDTO struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID     string          `gorm:"column:order_id;size:100;index;not null"`
	SKU         string          `gorm:"column:sku;not null"`
	ProductName string          `gorm:"column:product_name;not null"`
	Quantity    int             `gorm:"column:quantity;not null"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2);not null"`
	TotalPrice  decimal.Decimal `gorm:"column:total_price;type:numeric(12,2);not null"`
	HSNCode     string          `gorm:"column:hsn_code"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

// CancellationDTO is a row of order_cancellations.
type CancellationDTO struct {
	CancellationID string          `gorm:"column:cancellation_id;primaryKey;size:105"`
	OrderID        string          `gorm:"column:order_id;size:100;index;not null"`
	Reason         string          `gorm:"column:reason;not null"`
	CancelledBy    string          `gorm:"column:cancelled_by;size:16;not null"`
	RefundAmount   decimal.Decimal `gorm:"column:refund_amount;type:numeric(12,2);not null"`
	CancelledAt    time.Time       `gorm:"column:cancelled_at;not null"`
}

func (CancellationDTO) TableName() string {
	return "order_cancellations"
}

// Models lists the tables owned by this package.
func Models() []any {
	return []any{&OrderDTO{}, &ItemDTO{}, &CancellationDTO{}}
}

func fromDomain(o *order.Order) OrderDTO {
	details := o.Details()
	return OrderDTO{
		OrderID:         o.ID().String(),
		OrderDate:       details.OrderDate,
		CustomerName:    details.CustomerName,
		CustomerEmail:   details.CustomerEmail,
		CustomerPhone:   details.CustomerPhone,
		ShippingAddress: details.ShippingAddress.String(),
		BillingAddress:  details.BillingAddress,
		PaymentMethod:   details.PaymentMethod,
		TotalAmount:     o.TotalAmount(),
		Status:          o.Status().String(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

func itemsFromDomain(orderID string, items []order.Item) []ItemDTO {
	dtos := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, ItemDTO{
			OrderID:     orderID,
			SKU:         item.SKU(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			TotalPrice:  item.TotalPrice(),
			HSNCode:     item.HSNCode(),
		})
	}
	return dtos
}

func cancellationFromDomain(c *order.Cancellation) CancellationDTO {
	return CancellationDTO{
		CancellationID: c.ID().String(),
		OrderID:        c.OrderID().String(),
		Reason:         c.Reason(),
		CancelledBy:    c.CancelledBy().String(),
		RefundAmount:   c.RefundAmount(),
		CancelledAt:    c.CancelledAt(),
	}
}

// toDomain rehydrates the aggregate. Unknown status strings are rejected.
func toDomain(dto OrderDTO, itemDTOs []ItemDTO, cancellationDTOs []CancellationDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.ShippingAddress)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(itemDTOs))
	for _, it := range itemDTOs {
		total := it.TotalPrice
		item, itemErr := order.RestoreItem(it.ID, it.SKU, it.ProductName, it.Quantity, it.UnitPrice, &total, it.HSNCode)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	cancellations := make([]*order.Cancellation, 0, len(cancellationDTOs))
	for _, c := range cancellationDTOs {
		cancellation, cErr := cancellationToDomain(id, c)
		if cErr != nil {
			return nil, cErr
		}
		cancellations = append(cancellations, cancellation)
	}

	return order.RestoreOrder(
		id,
		order.Details{
			OrderDate:       dto.OrderDate,
			CustomerName:    dto.CustomerName,
			CustomerEmail:   dto.CustomerEmail,
			CustomerPhone:   dto.CustomerPhone,
			ShippingAddress: address,
			BillingAddress:  dto.BillingAddress,
			PaymentMethod:   dto.PaymentMethod,
		},
		items,
		dto.TotalAmount,
		status,
		cancellations,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func cancellationToDomain(orderID kernel.ID, dto CancellationDTO) (*order.Cancellation, error) {
	id, err := kernel.NewID(dto.CancellationID)
	if err != nil {
		return nil, err
	}
	by, err := order.ParseCancelledBy(dto.CancelledBy)
	if err != nil {
		return nil, err
	}
	return order.RestoreCancellation(id, orderID, dto.Reason, by, dto.RefundAmount, dto.CancelledAt)
}
