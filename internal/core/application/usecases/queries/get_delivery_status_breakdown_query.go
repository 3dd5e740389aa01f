package queries

import (
	"errors"

	"parcelshift/internal/pkg/guard"
)

var (
	ErrGetDeliveryStatusBreakdownQueryIsNotConstructed = errors.New(
		"GetDeliveryStatusBreakdownQuery must be created via NewGetDeliveryStatusBreakdownQuery constructor",
	)
)

// GetDeliveryStatusBreakdownQuery counts parcels per delivery status.
// Feeds the admin dashboard chart showing how the network's parcels are
// distributed across the delivery pipeline.
type GetDeliveryStatusBreakdownQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDeliveryStatusBreakdownQuery creates a status breakdown query.
func NewGetDeliveryStatusBreakdownQuery() GetDeliveryStatusBreakdownQuery {
	return GetDeliveryStatusBreakdownQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryStatusBreakdownQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryStatusBreakdownQueryIsNotConstructed)
}

// DeliveryStatusBreakdownQueryResponse is one slice of the breakdown:
// a delivery status label and the number of parcels currently in it.
type DeliveryStatusBreakdownQueryResponse struct {
	Status string
	Count  int
}
