package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"parcelshift/internal/core/application/usecases/commands"
	"parcelshift/internal/core/domain/model/account"
	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/pkg/errs"
)

func TestSetAccountRoleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	accountID := kernel.NewUUID()
	changed, err := account.NewAccount(accountID, "Nadia", "nadia@example.com", "s3cret-pass")
	require.NoError(t, err)

	cmd, err := commands.NewSetAccountRoleCommand(accountID, account.RoleAdmin)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	uow := new(MockAccountUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, accountID).Return(changed, nil).Once(),
		accountRepo.On("Update", ctx, mock.MatchedBy(func(a *account.Account) bool {
			return a.ID().IsEqual(accountID) && a.Role() == account.RoleAdmin
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetAccountRoleCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	accountRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSetAccountRoleCommandHandler_Handle_UnknownAccount(t *testing.T) {
	ctx := t.Context()

	accountID := kernel.NewUUID()
	cmd, err := commands.NewSetAccountRoleCommand(accountID, account.RoleRider)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	uow := new(MockAccountUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, accountID).
			Return(nil, errs.NewObjectNotFoundError("account", accountID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetAccountRoleCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestNewSetAccountRoleCommand_InvalidRole(t *testing.T) {
	_, err := commands.NewSetAccountRoleCommand(kernel.NewUUID(), account.Role("superuser"))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
