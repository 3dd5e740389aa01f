package rider

import (
	"errors"
	"fmt"
	"time"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/pkg/errs"
	"parcelshift/internal/pkg/guard"
)

// ErrRiderIsNotConstructed is returned when a Rider instance was not created
// through NewRider or RestoreRider.
var ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider constructor")

// Rider is the aggregate root for a delivery rider. It owns the application
// review state and the availability (work status) used by the assignment
// engine.
//
// Invariants:
//   - Must have a valid id, name, email, and district
//   - Only approved, idle riders can claim a delivery; the claim is the
//     conditional transition that prevents double-booking
//   - A rider in delivery holds at most one active parcel; releasing after a
//     delivered hand-off returns the rider to idle
type Rider struct {
	// id uniquely identifies the rider
	id kernel.UUID
	// name is the rider's display name
	name string
	// email is the unique key used by parcel listings and cashout aggregation
	email string
	// district is the service-center district the rider covers
	district string
	// status is the admin review state of the application
	status Status
	// workStatus is the availability flag toggled by claim/release
	workStatus WorkStatus
	// appliedAt is when the rider application was submitted
	appliedAt time.Time

	guard guard.ConstructorGuard
}

// NewRider creates a rider application in the pending, idle state.
func NewRider(id kernel.UUID, name, email, district string) (*Rider, error) {
	r := &Rider{
		status:     Pending,
		workStatus: WorkIdle,
		appliedAt:  time.Now().UTC(),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setEmail(email),
		r.setDistrict(district),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRider reconstructs a rider from persistence with its full state.
func RestoreRider(
	id kernel.UUID,
	name, email, district string,
	status Status,
	workStatus WorkStatus,
	appliedAt time.Time,
) (*Rider, error) {
	r := &Rider{
		appliedAt: appliedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setEmail(email),
		r.setDistrict(district),
		r.setStatus(status),
		r.setWorkStatus(workStatus),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the rider was created through a constructor.
func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

// IsEqual compares two riders by id.
func (r *Rider) IsEqual(other *Rider) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rider's unique identifier.
func (r *Rider) ID() kernel.UUID {
	return r.id
}

// Name returns the rider's display name.
func (r *Rider) Name() string {
	return r.name
}

// Email returns the rider's unique email.
func (r *Rider) Email() string {
	return r.email
}

// District returns the service-center district the rider covers.
func (r *Rider) District() string {
	return r.district
}

// Status returns the admin review state.
func (r *Rider) Status() Status {
	return r.status
}

// WorkStatus returns the availability flag.
func (r *Rider) WorkStatus() WorkStatus {
	return r.workStatus
}

// AppliedAt returns when the application was submitted.
func (r *Rider) AppliedAt() time.Time {
	return r.appliedAt
}

// IsAvailable reports whether the rider can take a new parcel:
// approved and idle.
func (r *Rider) IsAvailable() bool {
	return r.status == Approved && r.workStatus == WorkIdle
}

// Approve transitions a pending application to approved.
func (r *Rider) Approve() error {
	newStatus, err := r.status.Approve()
	if err != nil {
		return err
	}
	r.status = newStatus
	return nil
}

// Reject transitions a pending application to rejected.
func (r *Rider) Reject() error {
	newStatus, err := r.status.Reject()
	if err != nil {
		return err
	}
	r.status = newStatus
	return nil
}

// Deactivate withdraws an approved rider.
func (r *Rider) Deactivate() error {
	newStatus, err := r.status.Deactivate()
	if err != nil {
		return err
	}
	r.status = newStatus
	return nil
}

// Claim binds the rider to a delivery. The claim only succeeds while the
// rider is approved and still idle, which is the conditional check that makes
// a losing concurrent assignment surface as a retryable conflict instead of a
// silent double-booking.
func (r *Rider) Claim() error {
	if r.status != Approved {
		return errs.NewConflictErrorWithCause(
			"rider is not approved",
			fmt.Errorf("status is %s", r.status),
		)
	}
	if r.workStatus != WorkIdle {
		return errs.NewConflictErrorWithCause(
			"rider is not idle",
			fmt.Errorf("work status is %q", string(r.workStatus)),
		)
	}
	r.workStatus = WorkInDelivery
	return nil
}

// Release returns the rider to idle after a delivered hand-off.
// Releasing an idle rider is a no-op so a replayed delivery confirmation
// stays harmless.
func (r *Rider) Release() {
	r.workStatus = WorkIdle
}

func (r *Rider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rider) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Rider) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	r.email = email
	return nil
}

func (r *Rider) setDistrict(district string) error {
	if district == "" {
		return errs.NewValueIsRequiredError("district")
	}
	r.district = district
	return nil
}

func (r *Rider) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}

func (r *Rider) setWorkStatus(workStatus WorkStatus) error {
	if err := workStatus.Validate(); err != nil {
		return err
	}
	r.workStatus = workStatus
	return nil
}
