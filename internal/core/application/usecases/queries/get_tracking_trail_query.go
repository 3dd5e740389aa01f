package queries

import (
	"errors"
	"time"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/pkg/guard"
)

var (
	ErrGetTrackingTrailQueryIsNotConstructed = errors.New(
		"GetTrackingTrailQuery must be created via NewGetTrackingTrailQuery constructor",
	)
)

// GetTrackingTrailQuery retrieves the full tracking history of one parcel,
// oldest event first, so callers can render the journey in order.
type GetTrackingTrailQuery struct {
	parcelID kernel.UUID
	guard    guard.ConstructorGuard
}

// NewGetTrackingTrailQuery creates a tracking trail query.
func NewGetTrackingTrailQuery(parcelID kernel.UUID) (GetTrackingTrailQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return GetTrackingTrailQuery{}, err
	}
	return GetTrackingTrailQuery{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// ParcelID returns the parcel whose trail is listed.
func (q GetTrackingTrailQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

// Validate ensures the query was created through the constructor.
func (q GetTrackingTrailQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingTrailQueryIsNotConstructed)
}

// TrackingEventQueryResponse is one recorded step of a parcel's journey.
type TrackingEventQueryResponse struct {
	ID       kernel.UUID
	ParcelID kernel.UUID
	Step     string
	Time     time.Time
}
