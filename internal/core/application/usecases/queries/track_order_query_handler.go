package queries

import (
	"context"

	"sellerops/internal/pkg/errs"

	"gorm.io/gorm"
)

type TrackOrderQueryHandler struct {
	db *gorm.DB
}

func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle fails with ObjectNotFoundError when the order does not exist.
func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	var response TrackOrderQueryResponse
	result := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			status,
			order_date,
			created_at,
			updated_at AS last_updated
		FROM orders
		WHERE order_id = ?
	`, query.OrderID().String()).Scan(&response)
	if result.Error != nil {
		return TrackOrderQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	return response, nil
}
