package queries

import (
	"context"
	"database/sql"
	"time"

	"parcelshift/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelsQueryHandler executes parcel listing queries against the read
// side of the database. Results are ordered newest-first so dashboards show
// fresh parcels at the top.
type GetParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelsQueryHandler creates a handler for parcel listing queries.
func NewGetParcelsQueryHandler(db *gorm.DB) GetParcelsQueryHandler {
	return GetParcelsQueryHandler{db: db}
}

// Handle executes the query. With an empty creator filter it returns every
// parcel; otherwise only parcels created by that email.
func (h GetParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetParcelsQuery,
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
	`
	args := make([]any, 0, 1)
	if query.CreatedBy() != "" {
		stmt += ` WHERE created_by = ?`
		args = append(args, query.CreatedBy())
	}
	stmt += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanParcelRows(rows)
}

func scanParcelRows(rows *sql.Rows) ([]ParcelQueryResponse, error) {
	parcels := make([]ParcelQueryResponse, 0)

	for rows.Next() {
		var resp ParcelQueryResponse
		var id uuid.UUID
		var riderName, riderEmail sql.NullString
		var createdAt time.Time

		err := rows.Scan(
			&id,
			&resp.CreatedBy,
			&resp.Title,
			&resp.SenderServiceCenter,
			&resp.ReceiverServiceCenter,
			&resp.DeliveryCost,
			&resp.PaymentStatus,
			&resp.DeliveryStatus,
			&riderName,
			&riderEmail,
			&resp.CashedOut,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = parcelID
		resp.RiderName = riderName.String
		resp.RiderEmail = riderEmail.String
		resp.CreatedAt = createdAt
		parcels = append(parcels, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
