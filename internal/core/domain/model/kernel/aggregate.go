package kernel

import "time"

// Aggregate is implemented by every aggregate root whose status changes are announced
// once the surrounding Unit of Work commits.
type Aggregate interface {
	AggregateType() string
	LifecycleStatus() string
}

// LifecycleEvent is the record published for a tracked aggregate after commit.
type LifecycleEvent struct {
	Aggregate  string    `json:"aggregate"`
	ID         string    `json:"id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewLifecycleEvent snapshots the aggregate's current status.
func NewLifecycleEvent(id ID, aggregate Aggregate, occurredAt time.Time) LifecycleEvent {
	return LifecycleEvent{
		Aggregate:  aggregate.AggregateType(),
		ID:         id.String(),
		Status:     aggregate.LifecycleStatus(),
		OccurredAt: occurredAt,
	}
}
