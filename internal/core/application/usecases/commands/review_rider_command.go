package commands

import (
	"errors"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/pkg/errs"
	"parcelshift/internal/pkg/guard"
)

var ErrReviewRiderCommandIsNotConstructed = errors.New(
	"ReviewRiderCommand must be created via NewReviewRiderCommand constructor",
)

// ReviewDecision is an admin's verdict on a rider application or an active
// rider.
type ReviewDecision string

const (
	DecisionApprove    ReviewDecision = "approve"
	DecisionReject     ReviewDecision = "reject"
	DecisionDeactivate ReviewDecision = "deactivate"
)

// Validate checks the decision is one of the known verdicts.
func (d ReviewDecision) Validate() error {
	switch d {
	case DecisionApprove, DecisionReject, DecisionDeactivate:
		return nil
	}
	return errs.NewValueIsInvalidError("decision")
}

// ReviewRiderCommand applies an admin decision to a rider.
type ReviewRiderCommand struct { //nolint:recvcheck //using for validation
	riderID  kernel.UUID
	decision ReviewDecision

	guard guard.ConstructorGuard
}

// NewReviewRiderCommand creates a command to review a rider.
func NewReviewRiderCommand(riderID kernel.UUID, decision ReviewDecision) (ReviewRiderCommand, error) {
	reviewCommand := ReviewRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reviewCommand.setRiderID(riderID),
		reviewCommand.setDecision(decision),
	); err != nil {
		return ReviewRiderCommand{}, err
	}

	return reviewCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewRiderCommand) Validate() error {
	return c.guard.Validate(ErrReviewRiderCommandIsNotConstructed)
}

// RiderID returns the rider under review.
func (c ReviewRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Decision returns the admin's verdict.
func (c ReviewRiderCommand) Decision() ReviewDecision {
	return c.decision
}

func (c *ReviewRiderCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *ReviewRiderCommand) setDecision(decision ReviewDecision) error {
	if err := decision.Validate(); err != nil {
		return err
	}

	c.decision = decision
	return nil
}
