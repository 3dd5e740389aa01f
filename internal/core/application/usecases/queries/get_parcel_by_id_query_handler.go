package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelByIDQueryHandler looks up one parcel on the read side.
type GetParcelByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelByIDQueryHandler creates a handler for single-parcel lookups.
func NewGetParcelByIDQueryHandler(db *gorm.DB) GetParcelByIDQueryHandler {
	return GetParcelByIDQueryHandler{db: db}
}

// Handle executes the lookup. Returns an object-not-found error when no
// parcel carries the requested identifier.
func (h GetParcelByIDQueryHandler) Handle(
	ctx context.Context,
	query GetParcelByIDQuery,
) (ParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ParcelQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE id = ?
	`, query.ParcelID().Bytes()).Row()

	var resp ParcelQueryResponse
	var id uuid.UUID
	var riderName, riderEmail sql.NullString
	var createdAt time.Time

	err := row.Scan(
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
	if errors.Is(err, sql.ErrNoRows) {
		return ParcelQueryResponse{}, errs.NewObjectNotFoundError("parcel", query.ParcelID())
	}
	if err != nil {
		return ParcelQueryResponse{}, err
	}

	parcelID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return ParcelQueryResponse{}, idErr
	}
	resp.ID = parcelID
	resp.RiderName = riderName.String
	resp.RiderEmail = riderEmail.String
	resp.CreatedAt = createdAt

	return resp, nil
}
