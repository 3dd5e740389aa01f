// Package trackingrepo persists the append-only tracking log.
package trackingrepo

import (
	"time"

	"parcelshift/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// TrackingEventDTO represents the database structure for one tracking event.
type TrackingEventDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID   uuid.UUID `gorm:"type:uuid;index"`
	Step       string
	RecordedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for tracking events.
func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

// fromDomain converts a tracking event to its database representation.
func fromDomain(event *tracking.Event) TrackingEventDTO {
	return TrackingEventDTO{
		ID:         event.ID().Bytes(),
		ParcelID:   event.ParcelID().Bytes(),
		Step:       event.Step(),
		RecordedAt: event.Time(),
	}
}
