package ports

import (
	"context"

	"sellerops/internal/core/domain/model/kernel"
)

// EventPublisher announces committed lifecycle changes. Implementations must not block
// the caller for longer than their own write timeout.
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.LifecycleEvent) error
}
