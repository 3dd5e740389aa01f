package queries

import (
	"errors"
	"time"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/pkg/guard"
)

var (
	ErrGetCashoutsQueryIsNotConstructed = errors.New(
		"GetCashoutsQuery must be created via NewGetCashoutsQuery constructor",
	)
)

// GetCashoutsQuery retrieves cashout records. Admins list pending requests
// awaiting approval (pendingOnly true, empty riderEmail); riders list their
// own cashout history (riderEmail set, pendingOnly false). Both filters may
// be combined.
type GetCashoutsQuery struct {
	riderEmail  string
	pendingOnly bool
	guard       guard.ConstructorGuard
}

// NewGetCashoutsQuery creates a cashout listing query. An empty riderEmail
// lists cashouts across all riders.
func NewGetCashoutsQuery(riderEmail string, pendingOnly bool) GetCashoutsQuery {
	return GetCashoutsQuery{
		riderEmail:  riderEmail,
		pendingOnly: pendingOnly,
		guard:       guard.NewConstructorGuard(),
	}
}

// RiderEmail returns the rider filter; empty means all riders.
func (q GetCashoutsQuery) RiderEmail() string {
	return q.riderEmail
}

// PendingOnly reports whether approved records are excluded.
func (q GetCashoutsQuery) PendingOnly() bool {
	return q.pendingOnly
}

// Validate ensures the query was created through the constructor.
func (q GetCashoutsQuery) Validate() error {
	return q.guard.Validate(ErrGetCashoutsQueryIsNotConstructed)
}

// CashoutQueryResponse summarizes one cashout request: who asked, how much
// their settled deliveries earned, and how many parcels the amount covers.
type CashoutQueryResponse struct {
	ID          kernel.UUID
	RiderEmail  string
	TotalAmount float64
	Status      string
	ParcelCount int
	RequestedAt time.Time
}
