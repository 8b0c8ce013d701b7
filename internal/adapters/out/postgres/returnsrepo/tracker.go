package returnsrepo

import "sellerops/internal/core/domain/model/kernel"

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate kernel.Aggregate)
}
