package queries

import (
	"errors"
	"time"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/pkg/errs"
	"parcelshift/internal/pkg/guard"
)

var (
	ErrGetPaymentsQueryIsNotConstructed = errors.New(
		"GetPaymentsQuery must be created via NewGetPaymentsQuery constructor",
	)
)

// GetPaymentsQuery lists the payment history of one payer, newest first.
type GetPaymentsQuery struct {
	payerEmail string
	guard      guard.ConstructorGuard
}

// NewGetPaymentsQuery creates a payment history query.
func NewGetPaymentsQuery(payerEmail string) (GetPaymentsQuery, error) {
	if payerEmail == "" {
		return GetPaymentsQuery{}, errs.NewValueIsRequiredError("payerEmail")
	}
	return GetPaymentsQuery{
		payerEmail: payerEmail,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// PayerEmail returns the payer whose history is listed.
func (q GetPaymentsQuery) PayerEmail() string {
	return q.payerEmail
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentsQueryIsNotConstructed)
}

// PaymentQueryResponse is one settled charge in a payer's history.
type PaymentQueryResponse struct {
	ID            kernel.UUID
	ParcelID      kernel.UUID
	PayerEmail    string
	Amount        float64
	TransactionID string
	PaidAt        time.Time
}
