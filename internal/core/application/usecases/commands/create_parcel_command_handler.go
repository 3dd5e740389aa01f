package commands

import (
	"context"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/core/domain/model/parcel"
	"parcelshift/internal/core/domain/model/tracking"
)

// TrackingStepCreated is the tracking label written when a parcel enters the
// network. Later steps reuse the delivery status labels.
const TrackingStepCreated = "parcel-created"

// CreateParcelCommandHandler handles parcel registration. Persists the new
// parcel and its first tracking event in one transaction, so a parcel is
// never visible without a trail.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCreateParcelCommandHandler creates a handler for parcel registration.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel creation command.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newParcel, err := parcel.NewParcel(
		cmd.ParcelID(),
		cmd.CreatedBy(),
		cmd.Title(),
		cmd.SenderServiceCenter(),
		cmd.ReceiverServiceCenter(),
		cmd.DeliveryCost(),
	)
	if err != nil {
		return err
	}

	event, err := tracking.NewEvent(kernel.NewUUID(), newParcel.ID(), TrackingStepCreated)
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

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
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
