package commands

import (
	"context"
	"errors"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/core/domain/model/parcel"
	"parcelshift/internal/core/domain/model/tracking"
	"parcelshift/internal/core/domain/services"
	"parcelshift/internal/pkg/errs"
)

var (
	// ErrNoParcelToAssign signals an empty assignment queue. Routine for the
	// background job.
	ErrNoParcelToAssign = errors.New("no parcel to assign")

	// ErrNoFreeRidersFound signals that the waiting parcel's district has no
	// approved, idle rider right now.
	ErrNoFreeRidersFound = errors.New("no free riders found")
)

// AutoAssignRiderCommandHandler runs one automatic assignment round. Picks
// the oldest paid, uncollected parcel, asks the dispatcher for a free rider
// in its sender district, and persists both sides plus the tracking event in
// a single transaction.
type AutoAssignRiderCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAutoAssignRiderCommandHandler creates a handler for automatic assignment.
func NewAutoAssignRiderCommandHandler(uowFactory AssignmentUoWFactory) AutoAssignRiderCommandHandler {
	return AutoAssignRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one automatic assignment round.
// Returns ErrNoParcelToAssign or ErrNoFreeRidersFound when there is no work;
// callers decide how loudly to treat those.
func (h AutoAssignRiderCommandHandler) Handle(ctx context.Context, cmd AutoAssignRiderCommand) error {
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

	parcelRepo := uow.ParcelRepository()
	riderRepo := uow.RiderRepository()

	waitingParcel, err := parcelRepo.GetFirstAssignable(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoParcelToAssign
	}
	if err != nil {
		return err
	}

	riders, err := riderRepo.GetAllAvailableInDistrict(ctx, waitingParcel.SenderServiceCenter())
	if err != nil {
		return err
	}
	if len(riders) == 0 {
		return ErrNoFreeRidersFound
	}

	assignedRider, err := services.NewRiderDispatcher().Dispatch(waitingParcel, riders)
	if errors.Is(err, services.ErrRiderNotFound) {
		return ErrNoFreeRidersFound
	}
	if err != nil {
		return err
	}

	event, err := tracking.NewEvent(
		kernel.NewUUID(), waitingParcel.ID(), parcel.RiderAssigned.String())
	if err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, waitingParcel); err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, assignedRider); err != nil {
		return err
	}

	if err = uow.TrackingRepository().Add(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
