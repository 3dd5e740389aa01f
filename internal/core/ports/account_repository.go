package ports

import (
	"context"

	"parcelshift/internal/core/domain/model/account"
	"parcelshift/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates.
type AccountRepository interface {
	// Add persists a new account. Emails are unique; inserting a duplicate
	// returns errs.ErrConflict.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists changes to an existing account.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such account exists.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByEmail retrieves an account by email.
	// Returns errs.ErrObjectNotFound when no such account exists.
	GetByEmail(ctx context.Context, email string) (*account.Account, error)
}
