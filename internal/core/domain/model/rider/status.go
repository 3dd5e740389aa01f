package rider

import (
	"fmt"

	"parcelshift/internal/pkg/errs"
)

// Status represents the administrative review state of a rider application.
//
// State transitions:
//
//	pending ──┬──> approved ──> deactivated
//	          │
//	          └──> rejected
//
// Only approved riders are eligible for parcel assignment.
type Status int

const (
	// StatusUnknown catches uninitialized values; it is never valid.
	StatusUnknown Status = iota

	// Pending is the initial state of every rider application.
	Pending

	// Approved riders may be assigned parcels and accrue earnings.
	Approved

	// Rejected applications are terminal.
	Rejected

	// Deactivated riders were approved once and later withdrawn by an admin.
	Deactivated
)

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded
	return map[Status]string{
		Pending:     "pending",
		Approved:    "approved",
		Rejected:    "rejected",
		Deactivated: "deactivated",
	}
}

// StatusFromString parses the wire label of a rider status.
func StatusFromString(s string) (Status, error) {
	for status, label := range getValidStatusStrings() {
		if label == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a known rider status", s),
	)
}

// String returns the wire label, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getValidStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate reports whether the status is one of the four legal states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid rider status", s),
		)
	}
	return nil
}

// Approve transitions pending to approved.
func (s Status) Approve() (Status, error) {
	if s != Pending {
		return 0, errs.NewConflictErrorWithCause(
			"rider application is not pending",
			fmt.Errorf("%s cannot be approved", s),
		)
	}
	return Approved, nil
}

// Reject transitions pending to rejected.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, errs.NewConflictErrorWithCause(
			"rider application is not pending",
			fmt.Errorf("%s cannot be rejected", s),
		)
	}
	return Rejected, nil
}

// Deactivate transitions approved to deactivated.
func (s Status) Deactivate() (Status, error) {
	if s != Approved {
		return 0, errs.NewConflictErrorWithCause(
			"rider is not approved",
			fmt.Errorf("%s cannot be deactivated", s),
		)
	}
	return Deactivated, nil
}

// WorkStatus is the rider's availability flag. The empty string means idle;
// this matches the wire contract where an unset work_status is an available
// rider.
type WorkStatus string

const (
	// WorkIdle is the empty availability flag of a free rider.
	WorkIdle WorkStatus = ""

	// WorkInDelivery marks a rider bound to an active parcel.
	WorkInDelivery WorkStatus = "in-delivery"
)

// Validate reports whether the work status is idle or in-delivery.
func (w WorkStatus) Validate() error {
	if w != WorkIdle && w != WorkInDelivery {
		return errs.NewValueIsInvalidErrorWithCause(
			"work_status",
			fmt.Errorf("%q is not a valid work status", string(w)),
		)
	}
	return nil
}
