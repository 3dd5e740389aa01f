// Package ports defines repository interfaces for the parcel delivery domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	// The parcel must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate. Status fields
	// are written conditionally against the state the aggregate was loaded
	// with; a lost race surfaces as errs.ErrConflict rather than a silent
	// overwrite.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such parcel exists.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetFirstAssignable retrieves the oldest paid, not-yet-collected parcel.
	// Used by the assignment workflows to find work.
	// Returns errs.ErrObjectNotFound when nothing is waiting.
	GetFirstAssignable(ctx context.Context) (*parcel.Parcel, error)

	// GetAllSettleable retrieves every delivered, not-yet-cashed-out parcel
	// assigned to the given rider email. Used by cashout reconciliation.
	GetAllSettleable(ctx context.Context, riderEmail string) ([]*parcel.Parcel, error)

	// Delete removes a parcel. Returns errs.ErrObjectNotFound when no such
	// parcel exists.
	Delete(ctx context.Context, id kernel.UUID) error
}
