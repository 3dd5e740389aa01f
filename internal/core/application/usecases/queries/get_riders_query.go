package queries

import (
	"errors"
	"time"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/core/domain/model/rider"
	"parcelshift/internal/pkg/guard"
)

var (
	ErrGetRidersQueryIsNotConstructed = errors.New(
		"GetRidersQuery must be created via NewGetRidersQuery constructor",
	)
)

// GetRidersQuery lists rider applications in one review state. Admins use
// the pending view to work the review queue and the approved view for the
// active roster.
type GetRidersQuery struct {
	status rider.Status
	guard  guard.ConstructorGuard
}

// NewGetRidersQuery creates a rider listing query for one review state.
func NewGetRidersQuery(status rider.Status) (GetRidersQuery, error) {
	if err := status.Validate(); err != nil {
		return GetRidersQuery{}, err
	}
	return GetRidersQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Status returns the review state being listed.
func (q GetRidersQuery) Status() rider.Status {
	return q.status
}

// Validate ensures the query was created through the constructor.
func (q GetRidersQuery) Validate() error {
	return q.guard.Validate(ErrGetRidersQueryIsNotConstructed)
}

// RiderQueryResponse is the read model shared by the rider listing queries.
type RiderQueryResponse struct {
	ID         kernel.UUID
	Name       string
	Email      string
	District   string
	Status     string
	WorkStatus string
	AppliedAt  time.Time
}
