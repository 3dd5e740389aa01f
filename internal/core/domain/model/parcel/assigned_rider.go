package parcel

import (
	"errors"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/pkg/errs"
	"parcelshift/internal/pkg/guard"
)

// ErrAssignedRiderIsNotConstructed is returned when an AssignedRider was not
// created through NewAssignedRider.
var ErrAssignedRiderIsNotConstructed = errors.New(
	"AssignedRider must be created via NewAssignedRider constructor",
)

// AssignedRider is the denormalized rider snapshot stamped onto a parcel at
// assignment time. Name and email are copied from the rider aggregate so
// listings can render without a join; the id stays authoritative.
// The three fields are always set together, exactly once per assignment cycle.
type AssignedRider struct {
	id    kernel.UUID
	name  string
	email string

	guard guard.ConstructorGuard
}

// NewAssignedRider creates the rider snapshot for a parcel assignment.
// All three fields are required.
func NewAssignedRider(id kernel.UUID, name, email string) (AssignedRider, error) {
	if err := id.Validate(); err != nil {
		return AssignedRider{}, err
	}
	if name == "" {
		return AssignedRider{}, errs.NewValueIsRequiredError("riderName")
	}
	if email == "" {
		return AssignedRider{}, errs.NewValueIsRequiredError("riderEmail")
	}

	return AssignedRider{
		id:    id,
		name:  name,
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the snapshot was created through NewAssignedRider.
func (r AssignedRider) Validate() error {
	return r.guard.Validate(ErrAssignedRiderIsNotConstructed)
}

// ID returns the assigned rider's identifier.
func (r AssignedRider) ID() kernel.UUID {
	return r.id
}

// Name returns the assigned rider's display name.
func (r AssignedRider) Name() string {
	return r.name
}

// Email returns the assigned rider's email, the key used for rider-scoped
// parcel listings and cashout aggregation.
func (r AssignedRider) Email() string {
	return r.email
}
