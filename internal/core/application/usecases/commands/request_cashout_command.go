package commands

import (
	"errors"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/pkg/errs"
	"parcelshift/internal/pkg/guard"
)

var ErrRequestCashoutCommandIsNotConstructed = errors.New(
	"RequestCashoutCommand must be created via NewRequestCashoutCommand constructor",
)

// RequestCashoutCommand asks for a settlement of a rider's delivered, not yet
// cashed-out parcels. The parcel id names the delivery the rider requested
// from; whether the whole eligible batch or only that parcel gets flagged is
// the handler's configuration.
type RequestCashoutCommand struct { //nolint:recvcheck //using for validation
	riderEmail string
	parcelID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewRequestCashoutCommand creates a command to request a cashout.
func NewRequestCashoutCommand(riderEmail string, parcelID kernel.UUID) (RequestCashoutCommand, error) {
	cashoutCommand := RequestCashoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cashoutCommand.setRiderEmail(riderEmail),
		cashoutCommand.setParcelID(parcelID),
	); err != nil {
		return RequestCashoutCommand{}, err
	}

	return cashoutCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestCashoutCommand) Validate() error {
	return c.guard.Validate(ErrRequestCashoutCommandIsNotConstructed)
}

// RiderEmail returns the requesting rider's email.
func (c RequestCashoutCommand) RiderEmail() string {
	return c.riderEmail
}

// ParcelID returns the parcel the request originated from.
func (c RequestCashoutCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c *RequestCashoutCommand) setRiderEmail(riderEmail string) error {
	if riderEmail == "" {
		return errs.NewValueIsRequiredError("riderEmail")
	}

	c.riderEmail = riderEmail
	return nil
}

func (c *RequestCashoutCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}
