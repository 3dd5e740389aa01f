package parcel

import (
	"fmt"

	"parcelshift/internal/pkg/errs"
)

// DeliveryStatus represents the lifecycle state of a parcel's delivery.
// It implements a forward-only state machine:
//
//	not-collected ──> rider-assigned ──> in-transit ──> delivered
//	                        │                              ▲
//	                        └──────────────────────────────┘
//	                  (direct hand-off without a transit scan)
//
// No transition ever moves a parcel backward. The in-transit stop may be
// skipped when a rider delivers without an intermediate scan.
type DeliveryStatus int

const (
	// DeliveryStatusUnknown catches uninitialized values; it is never valid.
	DeliveryStatusUnknown DeliveryStatus = iota

	// NotCollected is the initial state: the parcel exists but no rider has
	// picked it up.
	NotCollected

	// RiderAssigned means a rider is bound to the parcel and owes it a pickup.
	RiderAssigned

	// InTransit means the rider has collected the parcel and is moving it.
	InTransit

	// Delivered is the final state. Delivered parcels become eligible for
	// rider-earnings cashout.
	Delivered
)

func getDeliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		DeliveryStatusUnknown: "unknown",
		NotCollected:          "not-collected",
		RiderAssigned:         "rider-assigned",
		InTransit:             "in-transit",
		Delivered:             "delivered",
	}
}

func getValidDeliveryStatusStrings() map[DeliveryStatus]string {
	//nolint:exhaustive // DeliveryStatusUnknown is intentionally excluded
	return map[DeliveryStatus]string{
		NotCollected:  "not-collected",
		RiderAssigned: "rider-assigned",
		InTransit:     "in-transit",
		Delivered:     "delivered",
	}
}

// DeliveryStatusFromString parses the wire label of a delivery status.
// Returns an invalid-value error for anything outside the four known labels,
// so unvalidated request payloads never reach the state machine.
func DeliveryStatusFromString(s string) (DeliveryStatus, error) {
	for status, label := range getValidDeliveryStatusStrings() {
		if label == s {
			return status, nil
		}
	}
	return DeliveryStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"delivery_status",
		fmt.Errorf("%q is not a known delivery status", s),
	)
}

// String returns the wire label of the status ("not-collected", "rider-assigned",
// "in-transit", "delivered"), or "unknown" for invalid values.
func (s DeliveryStatus) String() string {
	if str, ok := getDeliveryStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate reports whether the status is one of the four legal states.
func (s DeliveryStatus) Validate() error {
	if _, ok := getValidDeliveryStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery_status",
			fmt.Errorf("%d is not a valid delivery status", s),
		)
	}
	return nil
}

// ValidateAssign checks that a rider can be bound from the current status.
// Only not-collected parcels accept an assignment.
func (s DeliveryStatus) ValidateAssign() error {
	if s != NotCollected {
		return errs.NewConflictErrorWithCause(
			"parcel is not awaiting collection",
			fmt.Errorf("%s does not accept a rider assignment", s),
		)
	}
	return nil
}

// Assign transitions not-collected to rider-assigned.
func (s DeliveryStatus) Assign() (DeliveryStatus, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}
	return RiderAssigned, nil
}

// Advance transitions the status toward delivery. Legal moves:
//
//	rider-assigned -> in-transit
//	rider-assigned -> delivered
//	in-transit     -> delivered
//
// Everything else, including any backward move and re-delivering a delivered
// parcel, is rejected.
func (s DeliveryStatus) Advance(target DeliveryStatus) (DeliveryStatus, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	legal := (s == RiderAssigned && target == InTransit) ||
		(s == RiderAssigned && target == Delivered) ||
		(s == InTransit && target == Delivered)
	if !legal {
		return 0, errs.NewConflictErrorWithCause(
			"illegal delivery status transition",
			fmt.Errorf("cannot move from %s to %s", s, target),
		)
	}

	return target, nil
}

// PaymentStatus tracks whether the sender has paid for the delivery.
// Only paid parcels are eligible for rider assignment.
type PaymentStatus int

const (
	// PaymentStatusUnknown catches uninitialized values; it is never valid.
	PaymentStatusUnknown PaymentStatus = iota

	// Unpaid is the initial state of every created parcel.
	Unpaid

	// Paid means the payment collaborator confirmed the charge.
	Paid
)

func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentStatusUnknown is intentionally excluded
	return map[PaymentStatus]string{
		Unpaid: "unpaid",
		Paid:   "paid",
	}
}

// PaymentStatusFromString parses the wire label of a payment status.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, label := range getValidPaymentStatusStrings() {
		if label == s {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment_status",
		fmt.Errorf("%q is not a known payment status", s),
	)
}

// String returns "unpaid" or "paid", or "unknown" for invalid values.
func (s PaymentStatus) String() string {
	if str, ok := getValidPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate reports whether the status is unpaid or paid.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment_status",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

// MarkPaid transitions unpaid to paid. Paying twice is a conflict so the
// payment collaborator cannot double-record a charge.
func (s PaymentStatus) MarkPaid() (PaymentStatus, error) {
	if s != Unpaid {
		return 0, errs.NewConflictErrorWithCause(
			"parcel is not payable",
			fmt.Errorf("%s cannot be marked paid", s),
		)
	}
	return Paid, nil
}
