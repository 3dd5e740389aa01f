package commands

import (
	"context"
	"errors"

	"parcelshift/internal/core/domain/model/account"
	"parcelshift/internal/core/domain/model/rider"
	"parcelshift/internal/pkg/errs"
)

// ReviewRiderCommandHandler applies an admin verdict to a rider. Approval
// also promotes the rider's account to the rider role in the same
// transaction, so the review outcome and the auth surface never disagree.
type ReviewRiderCommandHandler struct {
	uowFactory RiderReviewUoWFactory
}

// NewReviewRiderCommandHandler creates a handler for rider reviews.
func NewReviewRiderCommandHandler(uowFactory RiderReviewUoWFactory) ReviewRiderCommandHandler {
	return ReviewRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rider review command.
func (h ReviewRiderCommandHandler) Handle(ctx context.Context, cmd ReviewRiderCommand) error {
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

	riderRepo := uow.RiderRepository()

	reviewedRider, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	if err = h.applyDecision(reviewedRider, cmd.Decision()); err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, reviewedRider); err != nil {
		return err
	}

	if cmd.Decision() == DecisionApprove {
		if err = h.promoteAccount(ctx, uow, reviewedRider.Email()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h ReviewRiderCommandHandler) applyDecision(r *rider.Rider, decision ReviewDecision) error {
	switch decision {
	case DecisionApprove:
		return r.Approve()
	case DecisionReject:
		return r.Reject()
	case DecisionDeactivate:
		return r.Deactivate()
	}
	return errs.NewValueIsInvalidError("decision")
}

// promoteAccount moves the rider's account to the rider role. An applicant
// without an account is tolerated: approval stands on its own.
func (h ReviewRiderCommandHandler) promoteAccount(ctx context.Context, uow RiderReviewUoW, email string) error {
	accountRepo := uow.AccountRepository()

	acc, err := accountRepo.GetByEmail(ctx, email)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err = acc.SetRole(account.RoleRider); err != nil {
		return err
	}

	return accountRepo.Update(ctx, acc)
}
