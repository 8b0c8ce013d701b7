package ports

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/returns"
)

type ReturnRepository interface {
	Add(ctx context.Context, aggregate *returns.Return) error

	Update(ctx context.Context, aggregate *returns.Return) error

	Get(ctx context.Context, id kernel.ID) (*returns.Return, error)
}

type ReplacementRepository interface {
	Add(ctx context.Context, aggregate *returns.Replacement) error

	Update(ctx context.Context, aggregate *returns.Replacement) error

	Get(ctx context.Context, id kernel.ID) (*returns.Replacement, error)

	// ExistsForReturn reports whether the return already owns a replacement.
	ExistsForReturn(ctx context.Context, returnID kernel.ID) (bool, error)
}

type RefundRepository interface {
	Add(ctx context.Context, aggregate *returns.Refund) error

	Update(ctx context.Context, aggregate *returns.Refund) error

	Get(ctx context.Context, transactionID kernel.ID) (*returns.Refund, error)
}
