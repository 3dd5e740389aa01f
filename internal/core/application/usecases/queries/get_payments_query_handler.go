package queries

import (
	"context"
	"time"

	"parcelshift/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPaymentsQueryHandler reads a payer's settled charges.
type GetPaymentsQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentsQueryHandler creates a handler for payment history queries.
func NewGetPaymentsQueryHandler(db *gorm.DB) GetPaymentsQueryHandler {
	return GetPaymentsQueryHandler{db: db}
}

// Handle executes the query, newest charge first.
func (h GetPaymentsQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentsQuery,
) ([]PaymentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			parcel_id,
			payer_email,
			amount,
			transaction_id,
			paid_at
		FROM payments
		WHERE payer_email = ?
		ORDER BY paid_at DESC
	`, query.PayerEmail()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]PaymentQueryResponse, 0)
	for rows.Next() {
		var resp PaymentQueryResponse
		var id, parcelID uuid.UUID
		var paidAt time.Time

		err = rows.Scan(
			&id,
			&parcelID,
			&resp.PayerEmail,
			&resp.Amount,
			&resp.TransactionID,
			&paidAt,
		)
		if err != nil {
			return nil, err
		}

		paymentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		paymentParcelID, idErr := kernel.UUIDFromBytes(parcelID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = paymentID
		resp.ParcelID = paymentParcelID
		resp.PaidAt = paidAt
		payments = append(payments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
