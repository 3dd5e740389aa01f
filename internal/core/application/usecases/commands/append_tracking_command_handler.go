package commands

import (
	"context"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/core/domain/model/tracking"
)

// AppendTrackingCommandHandler appends a progress step to a parcel's trail.
// The parcel is loaded first so a trail can never reference a parcel that
// does not exist.
type AppendTrackingCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewAppendTrackingCommandHandler creates a handler for tracking appends.
func NewAppendTrackingCommandHandler(uowFactory ParcelUoWFactory) AppendTrackingCommandHandler {
	return AppendTrackingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the tracking append command.
func (h AppendTrackingCommandHandler) Handle(ctx context.Context, cmd AppendTrackingCommand) error {
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

	trackedParcel, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	event, err := tracking.NewEvent(kernel.NewUUID(), trackedParcel.ID(), cmd.Step())
	if err != nil {
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
