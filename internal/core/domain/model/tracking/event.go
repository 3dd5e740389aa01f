// Package tracking provides the append-only audit trail entity for parcel
// progress. Events are never mutated or deleted and are always read back in
// ascending time order.
package tracking

import (
	"errors"
	"time"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/pkg/errs"
	"parcelshift/internal/pkg/guard"
)

// ErrEventIsNotConstructed is returned when an Event was not created through
// NewEvent or RestoreEvent.
var ErrEventIsNotConstructed = errors.New("tracking Event must be created via NewEvent constructor")

// Event is a single timestamped audit entry describing a parcel's progress.
// The step label is free-form; the delivery status machine writes its state
// labels here, but callers may append arbitrary milestones.
type Event struct {
	id       kernel.UUID
	parcelID kernel.UUID
	step     string
	// time is server-assigned at construction, never taken from the caller
	time time.Time

	guard guard.ConstructorGuard
}

// NewEvent creates an audit entry stamped with the current server time.
func NewEvent(id, parcelID kernel.UUID, step string) (*Event, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}
	if step == "" {
		return nil, errs.NewValueIsRequiredError("step")
	}

	return &Event{
		id:       id,
		parcelID: parcelID,
		step:     step,
		time:     time.Now().UTC(),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RestoreEvent reconstructs an audit entry from persistence.
func RestoreEvent(id, parcelID kernel.UUID, step string, at time.Time) (*Event, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}
	if step == "" {
		return nil, errs.NewValueIsRequiredError("step")
	}

	return &Event{
		id:       id,
		parcelID: parcelID,
		step:     step,
		time:     at,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the event was created through a constructor.
func (e *Event) Validate() error {
	if e == nil {
		return ErrEventIsNotConstructed
	}
	return e.guard.Validate(ErrEventIsNotConstructed)
}

// ID returns the event's unique identifier.
func (e *Event) ID() kernel.UUID {
	return e.id
}

// ParcelID returns the parcel this event belongs to.
func (e *Event) ParcelID() kernel.UUID {
	return e.parcelID
}

// Step returns the free-form progress label.
func (e *Event) Step() string {
	return e.step
}

// Time returns the server-assigned timestamp.
func (e *Event) Time() time.Time {
	return e.time
}
