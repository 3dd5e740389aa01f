package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"parcelshift/internal/core/application/usecases/commands"
	"parcelshift/internal/core/domain/model/parcel"
	"parcelshift/internal/core/domain/model/rider"
	"parcelshift/internal/pkg/errs"
)

func TestAutoAssignRiderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAutoAssignRiderCommand()

	testParcel := paidTestParcel(t, "Dhaka")
	testRider := approvedTestRider(t, "Dhaka")
	testRiders := []*rider.Rider{testRider}

	parcelRepo := new(MockParcelRepository)
	riderRepo := new(MockRiderRepository)
	trackingRepo := new(MockTrackingRepository)
	uow := new(MockAssignmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		parcelRepo.On("GetFirstAssignable", ctx).Return(testParcel, nil).Once(),
		riderRepo.On("GetAllAvailableInDistrict", ctx, "Dhaka").Return(testRiders, nil).Once(),
		parcelRepo.On("Update", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		riderRepo.On("Update", ctx, mock.AnythingOfType("*rider.Rider")).Return(nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("Add", ctx, mock.AnythingOfType("*tracking.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAutoAssignRiderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.RiderAssigned, testParcel.DeliveryStatus())
	assert.Equal(t, rider.WorkInDelivery, testRider.WorkStatus())
	parcelRepo.AssertExpectations(t)
	riderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAutoAssignRiderCommandHandler_Handle_NoParcel(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAutoAssignRiderCommand()

	parcelRepo := new(MockParcelRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockAssignmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		parcelRepo.On("GetFirstAssignable", ctx).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAutoAssignRiderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoParcelToAssign)
}

func TestAutoAssignRiderCommandHandler_Handle_NoFreeRiders(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAutoAssignRiderCommand()

	testParcel := paidTestParcel(t, "Dhaka")

	parcelRepo := new(MockParcelRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockAssignmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		parcelRepo.On("GetFirstAssignable", ctx).Return(testParcel, nil).Once(),
		riderRepo.On("GetAllAvailableInDistrict", ctx, "Dhaka").
			Return([]*rider.Rider{}, nil).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAutoAssignRiderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoFreeRidersFound)
	assert.Equal(t, parcel.NotCollected, testParcel.DeliveryStatus())
}
