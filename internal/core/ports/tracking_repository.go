package ports

import (
	"context"

	"parcelshift/internal/core/domain/model/tracking"
)

// TrackingRepository defines the persistence contract for the tracking log.
// The log is append-only: there is no update or delete.
type TrackingRepository interface {
	// Add appends a tracking event.
	Add(ctx context.Context, event *tracking.Event) error
}
