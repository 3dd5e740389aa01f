package queries

import (
	"errors"

	"parcelshift/internal/pkg/errs"
	"parcelshift/internal/pkg/guard"
)

var (
	ErrGetAvailableRidersQueryIsNotConstructed = errors.New(
		"GetAvailableRidersQuery must be created via NewGetAvailableRidersQuery constructor",
	)
)

// GetAvailableRidersQuery lists riders who can take a parcel right now:
// approved, idle, and stationed in the given district.
type GetAvailableRidersQuery struct {
	district string
	guard    guard.ConstructorGuard
}

// NewGetAvailableRidersQuery creates an availability query for one district.
func NewGetAvailableRidersQuery(district string) (GetAvailableRidersQuery, error) {
	if district == "" {
		return GetAvailableRidersQuery{}, errs.NewValueIsRequiredError("district")
	}
	return GetAvailableRidersQuery{
		district: district,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// District returns the district being staffed.
func (q GetAvailableRidersQuery) District() string {
	return q.district
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableRidersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableRidersQueryIsNotConstructed)
}
