package commands

import (
	"errors"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/pkg/errs"
	"parcelshift/internal/pkg/guard"
)

var ErrApplyAsRiderCommandIsNotConstructed = errors.New(
	"ApplyAsRiderCommand must be created via NewApplyAsRiderCommand constructor",
)

// ApplyAsRiderCommand represents a rider application. Applications start in
// pending status and await an admin review.
type ApplyAsRiderCommand struct { //nolint:recvcheck //using for validation
	riderID  kernel.UUID
	name     string
	email    string
	district string

	guard guard.ConstructorGuard
}

// NewApplyAsRiderCommand creates a command to file a rider application.
func NewApplyAsRiderCommand(riderID kernel.UUID, name, email, district string) (ApplyAsRiderCommand, error) {
	applyCommand := ApplyAsRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		applyCommand.setRiderID(riderID),
		applyCommand.setName(name),
		applyCommand.setEmail(email),
		applyCommand.setDistrict(district),
	); err != nil {
		return ApplyAsRiderCommand{}, err
	}

	return applyCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyAsRiderCommand) Validate() error {
	return c.guard.Validate(ErrApplyAsRiderCommandIsNotConstructed)
}

// RiderID returns the identifier for the new rider.
func (c ApplyAsRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Name returns the applicant's name.
func (c ApplyAsRiderCommand) Name() string {
	return c.name
}

// Email returns the applicant's email. Emails are unique across riders.
func (c ApplyAsRiderCommand) Email() string {
	return c.email
}

// District returns the district the applicant will collect from.
func (c ApplyAsRiderCommand) District() string {
	return c.district
}

func (c *ApplyAsRiderCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *ApplyAsRiderCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *ApplyAsRiderCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *ApplyAsRiderCommand) setDistrict(district string) error {
	if district == "" {
		return errs.NewValueIsRequiredError("district")
	}

	c.district = district
	return nil
}
