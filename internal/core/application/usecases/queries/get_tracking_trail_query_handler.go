package queries

import (
	"context"
	"time"

	"parcelshift/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTrackingTrailQueryHandler reads a parcel's tracking events in the
// order they were recorded.
type GetTrackingTrailQueryHandler struct {
	db *gorm.DB
}

// NewGetTrackingTrailQueryHandler creates a handler for tracking trail queries.
func NewGetTrackingTrailQueryHandler(db *gorm.DB) GetTrackingTrailQueryHandler {
	return GetTrackingTrailQueryHandler{db: db}
}

// Handle executes the query. An unknown parcel yields an empty trail, not
// an error; existence checks belong to the parcel lookup.
func (h GetTrackingTrailQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingTrailQuery,
) ([]TrackingEventQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			parcel_id,
			step,
			recorded_at
		FROM tracking_events
		WHERE parcel_id = ?
		ORDER BY recorded_at ASC
	`, query.ParcelID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trail := make([]TrackingEventQueryResponse, 0)
	for rows.Next() {
		var resp TrackingEventQueryResponse
		var id, parcelID uuid.UUID
		var recordedAt time.Time

		if err = rows.Scan(&id, &parcelID, &resp.Step, &recordedAt); err != nil {
			return nil, err
		}

		eventID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		eventParcelID, idErr := kernel.UUIDFromBytes(parcelID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = eventID
		resp.ParcelID = eventParcelID
		resp.Time = recordedAt
		trail = append(trail, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return trail, nil
}
