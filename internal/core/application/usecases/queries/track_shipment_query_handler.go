package queries

import (
	"context"

	"sellerops/internal/pkg/errs"

	"gorm.io/gorm"
)

type TrackShipmentQueryHandler struct {
	db *gorm.DB
}

func NewTrackShipmentQueryHandler(db *gorm.DB) TrackShipmentQueryHandler {
	return TrackShipmentQueryHandler{db: db}
}

// Handle reads the shipment header and its events ordered by event_date descending.
func (h TrackShipmentQueryHandler) Handle(
	ctx context.Context,
	query TrackShipmentQuery,
) (TrackShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackShipmentQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	column, key, paramName := "shipment_id", query.ShipmentID().String(), "shipment"
	if query.TrackingNumber() != "" {
		column, key, paramName = "tracking_number", query.TrackingNumber(), "shipment with tracking number"
	}

	var response TrackShipmentQueryResponse
	result := db.Raw(`
		SELECT
			shipment_id,
			order_id,
			tracking_number,
			courier_partner,
			status,
			weight,
			expected_delivery_date,
			actual_delivery_date
		FROM shipments
		WHERE `+column+` = ?
	`, key).Scan(&response)
	if result.Error != nil {
		return TrackShipmentQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return TrackShipmentQueryResponse{}, errs.NewObjectNotFoundError(paramName, key)
	}

	rows, err := db.Raw(`
		SELECT
			event_date,
			location,
			description,
			status_code
		FROM shipment_tracking_events
		WHERE shipment_id = ?
		ORDER BY event_date DESC, event_id DESC
	`, response.ShipmentID).Rows()
	if err != nil {
		return TrackShipmentQueryResponse{}, err
	}
	defer rows.Close()

	response.Events = make([]TrackingEventResponse, 0)
	for rows.Next() {
		var event TrackingEventResponse
		if err = rows.Scan(&event.EventDate, &event.Location, &event.Description, &event.StatusCode); err != nil {
			return TrackShipmentQueryResponse{}, err
		}
		response.Events = append(response.Events, event)
	}
	if err = rows.Err(); err != nil {
		return TrackShipmentQueryResponse{}, err
	}

	return response, nil
}
