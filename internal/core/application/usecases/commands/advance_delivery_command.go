package commands

import (
	"errors"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/core/domain/model/parcel"
	"parcelshift/internal/pkg/guard"
)

var ErrAdvanceDeliveryCommandIsNotConstructed = errors.New(
	"AdvanceDeliveryCommand must be created via NewAdvanceDeliveryCommand constructor",
)

// AdvanceDeliveryCommand moves a parcel's delivery status forward to the
// given target. Transition legality is the status machine's concern; the
// command only guarantees the target is a known status.
type AdvanceDeliveryCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	target   parcel.DeliveryStatus

	guard guard.ConstructorGuard
}

// NewAdvanceDeliveryCommand creates a command to advance a parcel's delivery
// status.
func NewAdvanceDeliveryCommand(parcelID kernel.UUID, target parcel.DeliveryStatus) (AdvanceDeliveryCommand, error) {
	advanceCommand := AdvanceDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		advanceCommand.setParcelID(parcelID),
		advanceCommand.setTarget(target),
	); err != nil {
		return AdvanceDeliveryCommand{}, err
	}

	return advanceCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryCommandIsNotConstructed)
}

// ParcelID returns the parcel to advance.
func (c AdvanceDeliveryCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Target returns the requested delivery status.
func (c AdvanceDeliveryCommand) Target() parcel.DeliveryStatus {
	return c.target
}

func (c *AdvanceDeliveryCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *AdvanceDeliveryCommand) setTarget(target parcel.DeliveryStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
