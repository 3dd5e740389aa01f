package commands

import (
	"context"
)

// SetAccountRoleCommandHandler replaces an account's role.
type SetAccountRoleCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewSetAccountRoleCommandHandler creates a handler for role changes.
func NewSetAccountRoleCommandHandler(uowFactory AccountUoWFactory) SetAccountRoleCommandHandler {
	return SetAccountRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the role change command.
func (h SetAccountRoleCommandHandler) Handle(ctx context.Context, cmd SetAccountRoleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	changedAccount, err := accountRepo.Get(ctx, cmd.AccountID())
	if err != nil {
		return err
	}

	if err = changedAccount.SetRole(cmd.Role()); err != nil {
		return err
	}

	if err = accountRepo.Update(ctx, changedAccount); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
