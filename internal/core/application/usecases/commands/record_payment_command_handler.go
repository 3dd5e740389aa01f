package commands

import (
	"context"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/core/domain/model/payment"
	"parcelshift/internal/core/domain/model/tracking"
)

// TrackingStepPaid is the tracking label written when a parcel's payment is
// recorded.
const TrackingStepPaid = "payment-recorded"

// RecordPaymentCommandHandler flips the parcel to paid and appends the
// immutable payment record plus a tracking event, all in one transaction.
// Paying an already-paid parcel is a conflict and leaves no history row.
type RecordPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewRecordPaymentCommandHandler creates a handler for payment recording.
func NewRecordPaymentCommandHandler(uowFactory PaymentUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment recording command.
func (h RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
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

	paidParcel, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = paidParcel.MarkPaid(); err != nil {
		return err
	}

	record, err := payment.NewRecord(
		kernel.NewUUID(),
		paidParcel.ID(),
		cmd.PayerEmail(),
		cmd.Amount(),
		cmd.TransactionID(),
	)
	if err != nil {
		return err
	}

	event, err := tracking.NewEvent(kernel.NewUUID(), paidParcel.ID(), TrackingStepPaid)
	if err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, paidParcel); err != nil {
		return err
	}

	if err = uow.PaymentRepository().Add(ctx, record); err != nil {
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
