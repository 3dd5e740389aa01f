package commands

import (
	"errors"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/pkg/errs"
	"parcelshift/internal/pkg/guard"
)

var ErrAppendTrackingCommandIsNotConstructed = errors.New(
	"AppendTrackingCommand must be created via NewAppendTrackingCommand constructor",
)

// AppendTrackingCommand appends a free-form progress step to a parcel's
// tracking trail.
type AppendTrackingCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	step     string

	guard guard.ConstructorGuard
}

// NewAppendTrackingCommand creates a command to append a tracking step.
func NewAppendTrackingCommand(parcelID kernel.UUID, step string) (AppendTrackingCommand, error) {
	trackingCommand := AppendTrackingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		trackingCommand.setParcelID(parcelID),
		trackingCommand.setStep(step),
	); err != nil {
		return AppendTrackingCommand{}, err
	}

	return trackingCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AppendTrackingCommand) Validate() error {
	return c.guard.Validate(ErrAppendTrackingCommandIsNotConstructed)
}

// ParcelID returns the parcel to append to.
func (c AppendTrackingCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Step returns the progress label.
func (c AppendTrackingCommand) Step() string {
	return c.step
}

func (c *AppendTrackingCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *AppendTrackingCommand) setStep(step string) error {
	if step == "" {
		return errs.NewValueIsRequiredError("step")
	}

	c.step = step
	return nil
}
