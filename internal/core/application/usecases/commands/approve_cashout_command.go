package commands

import (
	"errors"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/pkg/guard"
)

var ErrApproveCashoutCommandIsNotConstructed = errors.New(
	"ApproveCashoutCommand must be created via NewApproveCashoutCommand constructor",
)

// ApproveCashoutCommand marks a pending cashout record as approved.
// Approving an already approved record is a no-op.
type ApproveCashoutCommand struct { //nolint:recvcheck //using for validation
	cashoutID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveCashoutCommand creates a command to approve a cashout record.
func NewApproveCashoutCommand(cashoutID kernel.UUID) (ApproveCashoutCommand, error) {
	approveCommand := ApproveCashoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := approveCommand.setCashoutID(cashoutID); err != nil {
		return ApproveCashoutCommand{}, err
	}

	return approveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveCashoutCommand) Validate() error {
	return c.guard.Validate(ErrApproveCashoutCommandIsNotConstructed)
}

// CashoutID returns the record to approve.
func (c ApproveCashoutCommand) CashoutID() kernel.UUID {
	return c.cashoutID
}

func (c *ApproveCashoutCommand) setCashoutID(cashoutID kernel.UUID) error {
	if err := cashoutID.Validate(); err != nil {
		return err
	}

	c.cashoutID = cashoutID
	return nil
}
