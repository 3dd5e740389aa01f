package commands

import (
	"errors"

	"parcelshift/internal/pkg/guard"
)

var ErrAutoAssignRiderCommandIsNotConstructed = errors.New(
	"AutoAssignRiderCommand must be created via NewAutoAssignRiderCommand constructor",
)

// AutoAssignRiderCommand triggers one round of automatic assignment: the
// oldest paid, uncollected parcel is matched with a free rider in its sender
// district. Parameterless; the background job fires it on a schedule.
type AutoAssignRiderCommand struct {
	guard guard.ConstructorGuard
}

// NewAutoAssignRiderCommand creates a command to trigger automatic assignment.
func NewAutoAssignRiderCommand() AutoAssignRiderCommand {
	return AutoAssignRiderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *AutoAssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAutoAssignRiderCommandIsNotConstructed)
}
