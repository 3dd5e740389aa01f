package ports

import (
	"context"

	"parcelshift/internal/core/domain/model/cashout"
	"parcelshift/internal/core/domain/model/kernel"
)

// CashoutRepository defines the persistence contract for cashout records.
type CashoutRepository interface {
	// Add persists a new cashout record together with its parcel id set.
	Add(ctx context.Context, aggregate *cashout.Record) error

	// Update persists status changes to an existing cashout record.
	Update(ctx context.Context, aggregate *cashout.Record) error

	// Get retrieves a cashout record by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such record exists.
	Get(ctx context.Context, id kernel.UUID) (*cashout.Record, error)
}
