package cashout

import (
	"fmt"

	"parcelshift/internal/pkg/errs"
)

// Status represents the settlement state of a cashout record.
//
//	pending ──> approved
//
// Approved is final; re-approving is a no-op at the aggregate level so a
// replayed admin action cannot alter a settled amount.
type Status int

const (
	// StatusUnknown catches uninitialized values; it is never valid.
	StatusUnknown Status = iota

	// Pending is the initial state of every settlement request.
	Pending

	// Approved means an administrator confirmed the payout.
	Approved
)

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded
	return map[Status]string{
		Pending:  "pending",
		Approved: "approved",
	}
}

// StatusFromString parses the wire label of a cashout status.
func StatusFromString(s string) (Status, error) {
	for status, label := range getValidStatusStrings() {
		if label == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a known cashout status", s),
	)
}

// String returns "pending" or "approved", or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getValidStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate reports whether the status is pending or approved.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid cashout status", s),
		)
	}
	return nil
}
