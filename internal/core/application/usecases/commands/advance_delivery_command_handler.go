package commands

import (
	"context"
	"errors"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/core/domain/model/parcel"
	"parcelshift/internal/core/domain/model/tracking"
	"parcelshift/internal/pkg/errs"
)

// AdvanceDeliveryCommandHandler moves a parcel forward through its delivery
// lifecycle. Reaching delivered also releases the assigned rider back to the
// idle pool, in the same transaction, so the rider becomes claimable exactly
// when the delivery completes.
type AdvanceDeliveryCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAdvanceDeliveryCommandHandler creates a handler for delivery advancement.
func NewAdvanceDeliveryCommandHandler(uowFactory AssignmentUoWFactory) AdvanceDeliveryCommandHandler {
	return AdvanceDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery advancement command.
func (h AdvanceDeliveryCommandHandler) Handle(ctx context.Context, cmd AdvanceDeliveryCommand) error {
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

	advancedParcel, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	assignedRider := advancedParcel.AssignedRider()

	if err = advancedParcel.Advance(cmd.Target()); err != nil {
		return err
	}

	event, err := tracking.NewEvent(
		kernel.NewUUID(), advancedParcel.ID(), cmd.Target().String())
	if err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, advancedParcel); err != nil {
		return err
	}

	if cmd.Target() == parcel.Delivered && assignedRider != nil {
		if err = h.releaseRider(ctx, uow, assignedRider.Email()); err != nil {
			return err
		}
	}

	if err = uow.TrackingRepository().Add(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// releaseRider puts the delivering rider back into the idle pool. A rider row
// that disappeared is tolerated: the delivery still completes.
func (h AdvanceDeliveryCommandHandler) releaseRider(ctx context.Context, uow AssignmentUoW, email string) error {
	riderRepo := uow.RiderRepository()

	releasedRider, err := riderRepo.GetByEmail(ctx, email)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	releasedRider.Release()

	return riderRepo.Update(ctx, releasedRider)
}
