package queries

import (
	"context"

	"parcelshift/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GetRiderParcelsQueryHandler lists parcels by assigned rider. The open
// workload covers the rider-assigned and in-transit states; the completed
// view covers delivered parcels only.
type GetRiderParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetRiderParcelsQueryHandler creates a handler for rider workload queries.
func NewGetRiderParcelsQueryHandler(db *gorm.DB) GetRiderParcelsQueryHandler {
	return GetRiderParcelsQueryHandler{db: db}
}

// Handle executes the query for one rider, newest parcels first.
func (h GetRiderParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetRiderParcelsQuery,
) ([]ParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			id,
			created_by,
			title,
			sender_service_center,
			receiver_service_center,
			delivery_cost,
			payment_status,
			delivery_status,
			rider_name,
			rider_email,
			cashed_out,
			created_at
		FROM parcels
		WHERE rider_email = ?
	`
	args := []any{query.RiderEmail()}
	if query.CompletedOnly() {
		stmt += ` AND delivery_status = ?`
		args = append(args, parcel.Delivered.String())
	} else {
		stmt += ` AND delivery_status IN (?, ?)`
		args = append(args, parcel.RiderAssigned.String(), parcel.InTransit.String())
	}
	stmt += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanParcelRows(rows)
}
