package services

import (
	"errors"

	"parcelshift/internal/core/domain/model/parcel"
	"parcelshift/internal/core/domain/model/rider"
)

// ErrRiderNotFound is returned when no suitable rider is available for parcel
// dispatch. This occurs when either no riders are provided or none of the
// provided riders is approved, idle, and stationed in the parcel's sender
// district.
var ErrRiderNotFound = errors.New("rider not found")

// RiderDispatcher is a domain service responsible for finding and assigning a
// free rider to a paid parcel.
//
// Business rules:
//   - Parcels must be paid and not yet collected before dispatch
//   - Riders must be approved and not already on a delivery
//   - A rider only collects from their own district (the parcel's sender
//     service center)
//   - The first matching rider wins; there is no load balancing beyond the
//     idle check
//
// The claim-then-assign sequence mirrors the conditional update the
// persistence layer performs, so a rider can never be handed two parcels even
// when two dispatch rounds race.
type RiderDispatcher struct{}

// NewRiderDispatcher creates a new RiderDispatcher instance.
func NewRiderDispatcher() RiderDispatcher {
	return RiderDispatcher{}
}

// Dispatch finds a free rider in the parcel's sender district and executes
// the assignment workflow. Returns ErrRiderNotFound when no rider qualifies.
func (d RiderDispatcher) Dispatch(p *parcel.Parcel, riders []*rider.Rider) (*rider.Rider, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := p.ValidateAssign(); err != nil {
		return nil, err
	}

	chosen, err := d.findFreeRider(p, riders)
	if err != nil {
		return nil, err
	}

	if err = chosen.Claim(); err != nil {
		return nil, err
	}

	assigned, err := parcel.NewAssignedRider(chosen.ID(), chosen.Name(), chosen.Email())
	if err != nil {
		return nil, err
	}

	if err = p.AssignRider(assigned); err != nil {
		return nil, err
	}

	return chosen, nil
}

func (d RiderDispatcher) findFreeRider(p *parcel.Parcel, riders []*rider.Rider) (*rider.Rider, error) {
	for _, r := range riders {
		if err := r.Validate(); err != nil {
			return nil, err
		}

		if !r.IsAvailable() {
			continue
		}

		if r.District() != p.SenderServiceCenter() {
			continue
		}

		return r, nil
	}

	return nil, ErrRiderNotFound
}
