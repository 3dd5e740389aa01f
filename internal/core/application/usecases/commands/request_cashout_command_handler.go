package commands

import (
	"context"
	"errors"

	"parcelshift/internal/core/domain/model/cashout"
	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/core/domain/model/parcel"
	"parcelshift/internal/core/domain/services"
	"parcelshift/internal/core/ports"
	"parcelshift/internal/pkg/errs"
)

// ErrNoEligibleParcels is returned when the rider has no delivered,
// not-yet-cashed-out parcels to settle.
var ErrNoEligibleParcels = errors.New("no eligible parcels")

// RequestCashoutCommandHandler reconciles a rider's earnings: it collects the
// delivered, not-yet-cashed-out parcels, computes the tiered total, inserts a
// pending cashout record, and flags the settled parcels so the same delivery
// can never be counted twice. Everything runs in one transaction.
//
// flagWholeBatch selects which parcels get flagged: the entire eligible batch
// (matching the totals the record carries), or only the parcel the request
// originated from. The second mode preserves the legacy contract where the
// remaining deliveries stay claimable in later requests.
type RequestCashoutCommandHandler struct {
	uowFactory     CashoutUoWFactory
	calculator     services.EarningsCalculator
	flagWholeBatch bool
}

// NewRequestCashoutCommandHandler creates a handler for cashout requests.
func NewRequestCashoutCommandHandler(uowFactory CashoutUoWFactory, flagWholeBatch bool) RequestCashoutCommandHandler {
	return RequestCashoutCommandHandler{
		uowFactory:     uowFactory,
		calculator:     services.NewEarningsCalculator(),
		flagWholeBatch: flagWholeBatch,
	}
}

// Handle processes the cashout request and returns the settled total.
func (h RequestCashoutCommandHandler) Handle(ctx context.Context, cmd RequestCashoutCommand) (float64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	eligible, err := parcelRepo.GetAllSettleable(ctx, cmd.RiderEmail())
	if err != nil {
		return 0, err
	}
	if len(eligible) == 0 {
		return 0, ErrNoEligibleParcels
	}

	total, err := h.calculator.Calculate(eligible)
	if err != nil {
		return 0, err
	}

	parcelIDs := make([]kernel.UUID, 0, len(eligible))
	for _, p := range eligible {
		parcelIDs = append(parcelIDs, p.ID())
	}

	record, err := cashout.NewRecord(kernel.NewUUID(), cmd.RiderEmail(), total, parcelIDs)
	if err != nil {
		return 0, err
	}

	if err = uow.CashoutRepository().Add(ctx, record); err != nil {
		return 0, err
	}

	if err = h.flagParcels(ctx, parcelRepo, eligible, cmd.ParcelID()); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return total, nil
}

// flagParcels marks the settled parcels as cashed out. A flag that does not
// land (row changed or vanished underneath the transaction) turns the whole
// operation into a PartialApplication error; the deferred rollback is the
// compensating action.
func (h RequestCashoutCommandHandler) flagParcels(
	ctx context.Context,
	parcelRepo ports.ParcelRepository,
	eligible []*parcel.Parcel,
	requestParcelID kernel.UUID,
) error {
	applied := 0
	expected := 0

	for _, p := range eligible {
		if !h.flagWholeBatch && !p.ID().IsEqual(requestParcelID) {
			continue
		}
		expected++

		if err := p.MarkCashedOut(); err != nil {
			return err
		}
		if err := parcelRepo.Update(ctx, p); err != nil {
			if errors.Is(err, errs.ErrConflict) || errors.Is(err, errs.ErrObjectNotFound) {
				return errs.NewPartialApplicationError("cashout parcel flagging", expected, applied)
			}
			return err
		}
		applied++
	}

	return nil
}
