package commands

import (
	"context"
	"errors"

	"parcelshift/internal/core/domain/model/account"
	"parcelshift/internal/pkg/errs"
)

// RegisterAccountCommandHandler registers a new account. Each email may be
// registered only once; a second registration is a conflict.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterAccountCommandHandler creates a handler for account registration.
func NewRegisterAccountCommandHandler(uowFactory AccountUoWFactory) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the account registration command.
func (h RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newAccount, err := account.NewAccount(cmd.AccountID(), cmd.Name(), cmd.Email(), cmd.Password())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	_, err = accountRepo.GetByEmail(ctx, cmd.Email())
	if err == nil {
		return errs.NewConflictError("account already exists for this email")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = accountRepo.Add(ctx, newAccount); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
