// Package payment holds the immutable payment history record written when a
// parcel is paid. Records are append-only evidence of a charge and are never
// updated after creation.
package payment

import (
	"errors"
	"time"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/pkg/errs"
	"parcelshift/internal/pkg/guard"
)

// ErrRecordIsNotConstructed is returned when a Record was not created through
// NewRecord or RestoreRecord.
var ErrRecordIsNotConstructed = errors.New("payment Record must be created via NewRecord constructor")

// Record is a single completed charge against a parcel.
type Record struct {
	id            kernel.UUID
	parcelID      kernel.UUID
	payerEmail    string
	amount        float64
	transactionID string
	paidAt        time.Time

	guard guard.ConstructorGuard
}

// NewRecord creates a payment record stamped with the current server time.
// The transaction id comes from the payment provider and is kept verbatim.
func NewRecord(id, parcelID kernel.UUID, payerEmail string,
	amount float64, transactionID string) (*Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}
	if payerEmail == "" {
		return nil, errs.NewValueIsRequiredError("payerEmail")
	}
	if amount <= 0 {
		return nil, errs.NewValueIsInvalidError("amount")
	}
	if transactionID == "" {
		return nil, errs.NewValueIsRequiredError("transactionId")
	}

	return &Record{
		id:            id,
		parcelID:      parcelID,
		payerEmail:    payerEmail,
		amount:        amount,
		transactionID: transactionID,
		paidAt:        time.Now().UTC(),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestoreRecord reconstructs a payment record from persistence.
func RestoreRecord(id, parcelID kernel.UUID, payerEmail string,
	amount float64, transactionID string, paidAt time.Time) (*Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}
	if payerEmail == "" {
		return nil, errs.NewValueIsRequiredError("payerEmail")
	}
	if amount <= 0 {
		return nil, errs.NewValueIsInvalidError("amount")
	}
	if transactionID == "" {
		return nil, errs.NewValueIsRequiredError("transactionId")
	}

	return &Record{
		id:            id,
		parcelID:      parcelID,
		payerEmail:    payerEmail,
		amount:        amount,
		transactionID: transactionID,
		paidAt:        paidAt,
		guard:         guard.NewConstructorGuard(),
	}, nil
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

// ParcelID returns the parcel this charge paid for.
func (r *Record) ParcelID() kernel.UUID {
	return r.parcelID
}

// PayerEmail returns the email of the paying account.
func (r *Record) PayerEmail() string {
	return r.payerEmail
}

// Amount returns the charged amount.
func (r *Record) Amount() float64 {
	return r.amount
}

// TransactionID returns the provider's transaction identifier.
func (r *Record) TransactionID() string {
	return r.transactionID
}

// PaidAt returns the time the charge was recorded.
func (r *Record) PaidAt() time.Time {
	return r.paidAt
}
