package commands

import (
	"errors"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/pkg/errs"
	"parcelshift/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand represents a completed charge reported for a parcel.
// The transaction id comes from the payment provider after the frontend
// confirms the intent.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	parcelID      kernel.UUID
	payerEmail    string
	amount        float64
	transactionID string

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record a completed payment.
func NewRecordPaymentCommand(
	parcelID kernel.UUID,
	payerEmail string,
	amount float64,
	transactionID string,
) (RecordPaymentCommand, error) {
	paymentCommand := RecordPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentCommand.setParcelID(parcelID),
		paymentCommand.setPayerEmail(payerEmail),
		paymentCommand.setAmount(amount),
		paymentCommand.setTransactionID(transactionID),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// ParcelID returns the parcel being paid for.
func (c RecordPaymentCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// PayerEmail returns the email of the paying account.
func (c RecordPaymentCommand) PayerEmail() string {
	return c.payerEmail
}

// Amount returns the charged amount.
func (c RecordPaymentCommand) Amount() float64 {
	return c.amount
}

// TransactionID returns the provider's transaction identifier.
func (c RecordPaymentCommand) TransactionID() string {
	return c.transactionID
}

func (c *RecordPaymentCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *RecordPaymentCommand) setPayerEmail(payerEmail string) error {
	if payerEmail == "" {
		return errs.NewValueIsRequiredError("payerEmail")
	}

	c.payerEmail = payerEmail
	return nil
}

func (c *RecordPaymentCommand) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidError("amount")
	}

	c.amount = amount
	return nil
}

func (c *RecordPaymentCommand) setTransactionID(transactionID string) error {
	if transactionID == "" {
		return errs.NewValueIsRequiredError("transactionId")
	}

	c.transactionID = transactionID
	return nil
}
