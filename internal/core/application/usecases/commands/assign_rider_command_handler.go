package commands

import (
	"context"
	"fmt"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/core/domain/model/parcel"
	"parcelshift/internal/core/domain/model/tracking"
	"parcelshift/internal/pkg/errs"
)

// AssignRiderCommandHandler binds a rider to a parcel in one transaction:
// claim the rider, stamp the parcel, append the tracking event. The rider
// must be approved, idle, and stationed in the parcel's sender district;
// every violation is a conflict, so a losing concurrent request can retry
// with a different rider.
type AssignRiderCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignRiderCommandHandler creates a handler for manual rider assignment.
func NewAssignRiderCommandHandler(uowFactory AssignmentUoWFactory) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rider assignment command.
func (h AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) error {
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

	assignedParcel, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	claimedRider, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	if claimedRider.District() != assignedParcel.SenderServiceCenter() {
		return errs.NewConflictErrorWithCause(
			"rider is outside the parcel's sender district",
			fmt.Errorf("rider district %q, sender service center %q",
				claimedRider.District(), assignedParcel.SenderServiceCenter()),
		)
	}

	if err = claimedRider.Claim(); err != nil {
		return err
	}

	snapshot, err := parcel.NewAssignedRider(
		claimedRider.ID(), claimedRider.Name(), claimedRider.Email())
	if err != nil {
		return err
	}

	if err = assignedParcel.AssignRider(snapshot); err != nil {
		return err
	}

	event, err := tracking.NewEvent(
		kernel.NewUUID(), assignedParcel.ID(), parcel.RiderAssigned.String())
	if err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, assignedParcel); err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, claimedRider); err != nil {
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
