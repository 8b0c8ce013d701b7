package queries

import (
	"errors"
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery reads the current status and timestamps of one order.
//
// Example:
//
//	query, err := queries.NewTrackOrderQuery("ORD-1")
//	if err != nil {
//	    return err
//	}
//	tracking, err := handler.Handle(ctx, query)
type TrackOrderQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewTrackOrderQuery(orderID string) (TrackOrderQuery, error) {
	id, err := parseID("order_id", orderID)
	if err != nil {
		return TrackOrderQuery{}, err
	}
	return TrackOrderQuery{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

func (q TrackOrderQuery) OrderID() kernel.ID {
	return q.orderID
}

type TrackOrderQueryResponse struct {
	OrderID     string
	Status      string
	OrderDate   time.Time
	CreatedAt   time.Time
	LastUpdated time.Time
}
