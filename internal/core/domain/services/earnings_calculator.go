package services

import (
	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/core/domain/model/parcel"
)

// Earnings rates per delivery. A parcel moving within one service center pays
// the intra-district rate; anything crossing districts pays the higher rate.
const (
	IntraDistrictRate = 0.2
	InterDistrictRate = 0.3
)

// EarningsCalculator computes a rider's payout for a set of delivered
// parcels. The total is rounded half-up to two decimals exactly once, at the
// end, so per-parcel fractions are never lost to intermediate rounding.
type EarningsCalculator struct{}

// NewEarningsCalculator creates a new EarningsCalculator instance.
func NewEarningsCalculator() EarningsCalculator {
	return EarningsCalculator{}
}

// Calculate sums the tiered earnings over the given parcels and returns the
// rounded total. Parcels must be constructed aggregates; delivery and cashout
// eligibility is the caller's concern.
func (e EarningsCalculator) Calculate(parcels []*parcel.Parcel) (float64, error) {
	var total float64
	for _, p := range parcels {
		if err := p.Validate(); err != nil {
			return 0, err
		}
		total += p.DeliveryCost() * e.rate(p)
	}
	return kernel.RoundHalfUp2(total), nil
}

func (e EarningsCalculator) rate(p *parcel.Parcel) float64 {
	if p.IntraDistrict() {
		return IntraDistrictRate
	}
	return InterDistrictRate
}
