package commands

import (
	"context"
)

// ApproveCashoutCommandHandler settles a pending cashout record. The update
// is idempotent: re-approving leaves the record as approved and succeeds.
type ApproveCashoutCommandHandler struct {
	uowFactory CashoutApprovalUoWFactory
}

// NewApproveCashoutCommandHandler creates a handler for cashout approval.
func NewApproveCashoutCommandHandler(uowFactory CashoutApprovalUoWFactory) ApproveCashoutCommandHandler {
	return ApproveCashoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cashout approval command.
func (h ApproveCashoutCommandHandler) Handle(ctx context.Context, cmd ApproveCashoutCommand) error {
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

	cashoutRepo := uow.CashoutRepository()

	record, err := cashoutRepo.Get(ctx, cmd.CashoutID())
	if err != nil {
		return err
	}

	record.Approve()

	if err = cashoutRepo.Update(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
