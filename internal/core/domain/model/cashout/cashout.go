package cashout

import (
	"errors"
	"fmt"
	"time"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/pkg/errs"
	"parcelshift/internal/pkg/guard"
)

// ErrRecordIsNotConstructed is returned when a Record instance was not
// created through NewRecord or RestoreRecord.
var ErrRecordIsNotConstructed = errors.New("cashout Record must be created via NewRecord constructor")

// Record is the aggregate root for a rider-earnings settlement. It snapshots
// the delivered parcels included in the settlement and the computed total at
// request time; approval only flips the status, never the amount.
//
// Invariants:
//   - Must have a valid id, a rider email, a positive total, and at least one
//     parcel id
//   - The total carries two decimal places (enforced at construction through
//     kernel.RoundHalfUp2)
//   - Immutable except for the pending -> approved transition
type Record struct {
	// id uniquely identifies the settlement request
	id kernel.UUID
	// riderEmail is the rider being paid out
	riderEmail string
	// totalAmount is the settled earnings, rounded to two decimals
	totalAmount float64
	// parcelIDs are the delivered parcels included in this settlement
	parcelIDs []kernel.UUID
	// requestedAt is when the rider asked for the settlement
	requestedAt time.Time
	// status is pending until an administrator approves
	status Status

	guard guard.ConstructorGuard
}

// NewRecord creates a pending settlement request. The total is re-rounded
// defensively so a record can never carry more than two decimals.
func NewRecord(
	id kernel.UUID,
	riderEmail string,
	totalAmount float64,
	parcelIDs []kernel.UUID,
) (*Record, error) {
	r := &Record{
		requestedAt: time.Now().UTC(),
		status:      Pending,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setRiderEmail(riderEmail),
		r.setTotalAmount(totalAmount),
		r.setParcelIDs(parcelIDs),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRecord reconstructs a settlement record from persistence.
func RestoreRecord(
	id kernel.UUID,
	riderEmail string,
	totalAmount float64,
	parcelIDs []kernel.UUID,
	requestedAt time.Time,
	status Status,
) (*Record, error) {
	r := &Record{
		requestedAt: requestedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setRiderEmail(riderEmail),
		r.setTotalAmount(totalAmount),
		r.setParcelIDs(parcelIDs),
		r.setStatus(status),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the record was created through a constructor.
func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// RiderEmail returns the rider being paid out.
func (r *Record) RiderEmail() string {
	return r.riderEmail
}

// TotalAmount returns the settled earnings with two decimal places.
func (r *Record) TotalAmount() float64 {
	return r.totalAmount
}

// ParcelIDs returns a copy of the parcel ids included in the settlement.
func (r *Record) ParcelIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(r.parcelIDs))
	copy(ids, r.parcelIDs)
	return ids
}

// RequestedAt returns when the settlement was requested.
func (r *Record) RequestedAt() time.Time {
	return r.requestedAt
}

// Status returns the settlement state.
func (r *Record) Status() Status {
	return r.status
}

// Approve confirms the payout. Approving an already approved record is a
// no-op: the status stays approved and the total is untouched, so a replayed
// admin request is harmless.
func (r *Record) Approve() {
	r.status = Approved
}

func (r *Record) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Record) setRiderEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("riderEmail")
	}
	r.riderEmail = email
	return nil
}

func (r *Record) setTotalAmount(total float64) error {
	if total <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalAmount",
			fmt.Errorf("%v is not greater than 0", total),
		)
	}
	r.totalAmount = kernel.RoundHalfUp2(total)
	return nil
}

func (r *Record) setParcelIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("parcelIds")
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	r.parcelIDs = make([]kernel.UUID, len(ids))
	copy(r.parcelIDs, ids)
	return nil
}

func (r *Record) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}
