package queries

import (
	"context"
	"database/sql"
	"time"

	"parcelshift/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRidersQueryHandler lists rider applications by review state.
type GetRidersQueryHandler struct {
	db *gorm.DB
}

// NewGetRidersQueryHandler creates a handler for rider listing queries.
func NewGetRidersQueryHandler(db *gorm.DB) GetRidersQueryHandler {
	return GetRidersQueryHandler{db: db}
}

// Handle executes the query, oldest application first so the review queue
// is worked in arrival order.
func (h GetRidersQueryHandler) Handle(
	ctx context.Context,
	query GetRidersQuery,
) ([]RiderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			district,
			status,
			work_status,
			applied_at
		FROM riders
		WHERE status = ?
		ORDER BY applied_at ASC
	`, query.Status().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRiderRows(rows)
}

func scanRiderRows(rows *sql.Rows) ([]RiderQueryResponse, error) {
	riders := make([]RiderQueryResponse, 0)

	for rows.Next() {
		var resp RiderQueryResponse
		var id uuid.UUID
		var appliedAt time.Time

		err := rows.Scan(
			&id,
			&resp.Name,
			&resp.Email,
			&resp.District,
			&resp.Status,
			&resp.WorkStatus,
			&appliedAt,
		)
		if err != nil {
			return nil, err
		}

		riderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = riderID
		resp.AppliedAt = appliedAt
		riders = append(riders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return riders, nil
}
