package ports

import (
	"context"

	"sellerops/internal/core/domain/model/inventory"
	"sellerops/internal/core/domain/model/kernel"
)

type ProductRepository interface {
	Add(ctx context.Context, aggregate *inventory.Product) error

	Update(ctx context.Context, aggregate *inventory.Product) error

	Get(ctx context.Context, sku kernel.ID) (*inventory.Product, error)
}

// StockRepository stores at most one stock record per sku.
type StockRepository interface {
	Add(ctx context.Context, aggregate *inventory.Stock) error

	Update(ctx context.Context, aggregate *inventory.Stock) error

	Get(ctx context.Context, sku kernel.ID) (*inventory.Stock, error)
}

type ListingRepository interface {
	Add(ctx context.Context, aggregate *inventory.Listing) error

	Update(ctx context.Context, aggregate *inventory.Listing) error

	Get(ctx context.Context, id kernel.ID) (*inventory.Listing, error)
}
