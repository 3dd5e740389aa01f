package queries

import (
	"context"

	"parcelshift/internal/core/domain/model/rider"

	"gorm.io/gorm"
)

// GetAvailableRidersQueryHandler lists the free, approved riders of one
// district for manual assignment screens.
type GetAvailableRidersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableRidersQueryHandler creates a handler for availability queries.
func NewGetAvailableRidersQueryHandler(db *gorm.DB) GetAvailableRidersQueryHandler {
	return GetAvailableRidersQueryHandler{db: db}
}

// Handle executes the query for one district.
func (h GetAvailableRidersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableRidersQuery,
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
		  AND work_status = ?
		  AND district = ?
		ORDER BY applied_at ASC
	`, rider.Approved.String(), string(rider.WorkIdle), query.District()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRiderRows(rows)
}
