package commands

import (
	"context"
	"errors"

	"parcelshift/internal/core/domain/model/rider"
	"parcelshift/internal/pkg/errs"
)

// ApplyAsRiderCommandHandler files a new rider application. One application
// per email: a duplicate is a conflict regardless of the earlier
// application's review outcome.
type ApplyAsRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewApplyAsRiderCommandHandler creates a handler for rider applications.
func NewApplyAsRiderCommandHandler(uowFactory RiderUoWFactory) ApplyAsRiderCommandHandler {
	return ApplyAsRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rider application command.
func (h ApplyAsRiderCommandHandler) Handle(ctx context.Context, cmd ApplyAsRiderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newRider, err := rider.NewRider(cmd.RiderID(), cmd.Name(), cmd.Email(), cmd.District())
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

	riderRepo := uow.RiderRepository()

	_, err = riderRepo.GetByEmail(ctx, cmd.Email())
	if err == nil {
		return errs.NewConflictError("rider application already exists for this email")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = riderRepo.Add(ctx, newRider); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
