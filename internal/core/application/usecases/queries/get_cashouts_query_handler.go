package queries

import (
	"context"
	"time"

	"parcelshift/internal/core/domain/model/cashout"
	"parcelshift/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCashoutsQueryHandler lists cashout records with the number of parcels
// each settlement covers.
type GetCashoutsQueryHandler struct {
	db *gorm.DB
}

// NewGetCashoutsQueryHandler creates a handler for cashout listing queries.
func NewGetCashoutsQueryHandler(db *gorm.DB) GetCashoutsQueryHandler {
	return GetCashoutsQueryHandler{db: db}
}

// Handle executes the query, newest requests first.
func (h GetCashoutsQueryHandler) Handle(
	ctx context.Context,
	query GetCashoutsQuery,
) ([]CashoutQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			c.id,
			c.rider_email,
			c.total_amount,
			c.status,
			(SELECT COUNT(*) FROM cashout_parcels cp WHERE cp.cashout_id = c.id),
			c.requested_at
		FROM cashouts c
	`
	conds := make([]string, 0, 2)
	args := make([]any, 0, 2)
	if query.RiderEmail() != "" {
		conds = append(conds, `c.rider_email = ?`)
		args = append(args, query.RiderEmail())
	}
	if query.PendingOnly() {
		conds = append(conds, `c.status = ?`)
		args = append(args, cashout.Pending.String())
	}
	for i, cond := range conds {
		if i == 0 {
			stmt += ` WHERE ` + cond
		} else {
			stmt += ` AND ` + cond
		}
	}
	stmt += ` ORDER BY c.requested_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cashouts := make([]CashoutQueryResponse, 0)
	for rows.Next() {
		var resp CashoutQueryResponse
		var id uuid.UUID
		var requestedAt time.Time

		err = rows.Scan(
			&id,
			&resp.RiderEmail,
			&resp.TotalAmount,
			&resp.Status,
			&resp.ParcelCount,
			&requestedAt,
		)
		if err != nil {
			return nil, err
		}

		cashoutID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = cashoutID
		resp.RequestedAt = requestedAt
		cashouts = append(cashouts, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cashouts, nil
}
