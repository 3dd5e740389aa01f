package commands

import (
	"errors"

	"parcelshift/internal/core/domain/model/account"
	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/pkg/guard"
)

var ErrSetAccountRoleCommandIsNotConstructed = errors.New(
	"SetAccountRoleCommand must be created via NewSetAccountRoleCommand constructor",
)

// SetAccountRoleCommand replaces an account's role. Used by admins to grant
// or revoke the admin role.
type SetAccountRoleCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	role      account.Role

	guard guard.ConstructorGuard
}

// NewSetAccountRoleCommand creates a command to change an account's role.
func NewSetAccountRoleCommand(accountID kernel.UUID, role account.Role) (SetAccountRoleCommand, error) {
	roleCommand := SetAccountRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		roleCommand.setAccountID(accountID),
		roleCommand.setRole(role),
	); err != nil {
		return SetAccountRoleCommand{}, err
	}

	return roleCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SetAccountRoleCommand) Validate() error {
	return c.guard.Validate(ErrSetAccountRoleCommandIsNotConstructed)
}

// AccountID returns the account to change.
func (c SetAccountRoleCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Role returns the role to set.
func (c SetAccountRoleCommand) Role() account.Role {
	return c.role
}

func (c *SetAccountRoleCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *SetAccountRoleCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
