package ports

import (
	"context"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/core/domain/model/rider"
)

// RiderRepository defines the persistence contract for rider aggregates.
type RiderRepository interface {
	// Add persists a new rider application.
	Add(ctx context.Context, aggregate *rider.Rider) error

	// Update persists changes to an existing rider. The work status is
	// written conditionally against the loaded state so two assignment rounds
	// can never both claim the same rider; the loser gets errs.ErrConflict.
	Update(ctx context.Context, aggregate *rider.Rider) error

	// Get retrieves a rider aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such rider exists.
	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)

	// GetByEmail retrieves a rider aggregate by email.
	// Returns errs.ErrObjectNotFound when no such rider exists.
	GetByEmail(ctx context.Context, email string) (*rider.Rider, error)

	// GetAllAvailableInDistrict retrieves the approved, idle riders stationed
	// in the given district, oldest application first.
	GetAllAvailableInDistrict(ctx context.Context, district string) ([]*rider.Rider, error)
}
