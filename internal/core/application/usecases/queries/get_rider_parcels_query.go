package queries

import (
	"errors"

	"parcelshift/internal/pkg/errs"
	"parcelshift/internal/pkg/guard"
)

var (
	ErrGetRiderParcelsQueryIsNotConstructed = errors.New(
		"GetRiderParcelsQuery must be created via NewGetRiderParcelsQuery constructor",
	)
)

// GetRiderParcelsQuery retrieves the parcels assigned to one rider.
// With completedOnly false the query lists the rider's open workload
// (assigned or in transit); with completedOnly true it lists finished
// deliveries for the rider's history view.
type GetRiderParcelsQuery struct {
	riderEmail    string
	completedOnly bool
	guard         guard.ConstructorGuard
}

// NewGetRiderParcelsQuery creates a rider workload query.
func NewGetRiderParcelsQuery(riderEmail string, completedOnly bool) (GetRiderParcelsQuery, error) {
	if riderEmail == "" {
		return GetRiderParcelsQuery{}, errs.NewValueIsRequiredError("riderEmail")
	}
	return GetRiderParcelsQuery{
		riderEmail:    riderEmail,
		completedOnly: completedOnly,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RiderEmail returns the rider whose parcels are listed.
func (q GetRiderParcelsQuery) RiderEmail() string {
	return q.riderEmail
}

// CompletedOnly reports whether the query lists delivered parcels instead
// of the open workload.
func (q GetRiderParcelsQuery) CompletedOnly() bool {
	return q.completedOnly
}

// Validate ensures the query was created through the constructor.
func (q GetRiderParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderParcelsQueryIsNotConstructed)
}
