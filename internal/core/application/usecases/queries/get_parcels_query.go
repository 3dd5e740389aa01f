package queries

import (
	"errors"
	"time"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/pkg/guard"
)

var (
	ErrGetParcelsQueryIsNotConstructed = errors.New(
		"GetParcelsQuery must be created via NewGetParcelsQuery constructor",
	)
)

// GetParcelsQuery retrieves parcels newest-first, optionally scoped to one
// creator. An empty createdBy returns the full listing used by the admin
// dashboard; a non-empty createdBy narrows the listing to that customer's
// own parcels.
//
// Example:
//
//	query := NewGetParcelsQuery("sender@example.com")
//	handler := NewGetParcelsQueryHandler(db)
//
//	parcels, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list parcels: %w", err)
//	}
type GetParcelsQuery struct {
	createdBy string
	guard     guard.ConstructorGuard
}

// NewGetParcelsQuery creates a parcel listing query. Pass an empty createdBy
// to list every parcel in the network.
func NewGetParcelsQuery(createdBy string) GetParcelsQuery {
	return GetParcelsQuery{
		createdBy: createdBy,
		guard:     guard.NewConstructorGuard(),
	}
}

// CreatedBy returns the creator email filter; empty means unfiltered.
func (q GetParcelsQuery) CreatedBy() string {
	return q.createdBy
}

// Validate ensures the query was created through the constructor.
func (q GetParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelsQueryIsNotConstructed)
}

// ParcelQueryResponse is the read model shared by every parcel listing query.
// Rider fields are empty until a rider has been assigned.
type ParcelQueryResponse struct {
	ID                    kernel.UUID
	CreatedBy             string
	Title                 string
	SenderServiceCenter   string
	ReceiverServiceCenter string
	DeliveryCost          float64
	PaymentStatus         string
	DeliveryStatus        string
	RiderName             string
	RiderEmail            string
	CashedOut             bool
	CreatedAt             time.Time
}
