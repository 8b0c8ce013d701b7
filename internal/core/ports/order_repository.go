package ports

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/order"
)

type OrderRepository interface {
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the order row and inserts its pending cancellations.
	Update(ctx context.Context, aggregate *order.Order) error

	Get(ctx context.Context, id kernel.ID) (*order.Order, error)
}
