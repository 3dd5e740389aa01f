package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"parcelshift/internal/core/application/usecases/commands"
	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/pkg/errs"
)

func TestDeleteParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	parcelID := kernel.NewUUID()
	cmd, err := commands.NewDeleteParcelCommand(parcelID)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockParcelUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Delete", ctx, parcelID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteParcelCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	parcelRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteParcelCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()

	parcelID := kernel.NewUUID()
	cmd, err := commands.NewDeleteParcelCommand(parcelID)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockParcelUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Delete", ctx, parcelID).
			Return(errs.NewObjectNotFoundError("parcel", parcelID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteParcelCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestNewDeleteParcelCommand_EmptyID(t *testing.T) {
	_, err := commands.NewDeleteParcelCommand(kernel.UUID{})
	require.Error(t, err)
}
