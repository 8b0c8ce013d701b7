// Package events composes the lifecycle event publishers used after commit.
package events

import (
	"context"
	"errors"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/ports"
)

// FanOutPublisher hands every batch to each publisher in turn. A failing publisher does
// not stop the others; their errors are joined.
type FanOutPublisher struct {
	publishers []ports.EventPublisher
}

func NewFanOutPublisher(publishers ...ports.EventPublisher) *FanOutPublisher {
	nonNil := make([]ports.EventPublisher, 0, len(publishers))
	for _, p := range publishers {
		if p != nil {
			nonNil = append(nonNil, p)
		}
	}
	return &FanOutPublisher{publishers: nonNil}
}

func (f *FanOutPublisher) Publish(ctx context.Context, events ...kernel.LifecycleEvent) error {
	if len(events) == 0 {
		return nil
	}

	var errs []error
	for _, p := range f.publishers {
		if err := p.Publish(ctx, events...); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type transitionCounter interface {
	IncTransition(aggregate, status string)
}

// TransitionRecorder counts each published event as a lifecycle transition.
type TransitionRecorder struct {
	counter transitionCounter
}

func NewTransitionRecorder(counter transitionCounter) *TransitionRecorder {
	return &TransitionRecorder{counter: counter}
}

func (r *TransitionRecorder) Publish(_ context.Context, events ...kernel.LifecycleEvent) error {
	for _, event := range events {
		r.counter.IncTransition(event.Aggregate, event.Status)
	}
	return nil
}
