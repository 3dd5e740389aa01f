package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDeliveryStatusBreakdownQueryHandler aggregates parcel counts per
// delivery status.
type GetDeliveryStatusBreakdownQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryStatusBreakdownQueryHandler creates a handler for the
// status breakdown query.
func NewGetDeliveryStatusBreakdownQueryHandler(db *gorm.DB) GetDeliveryStatusBreakdownQueryHandler {
	return GetDeliveryStatusBreakdownQueryHandler{db: db}
}

// Handle executes the aggregation. Statuses with no parcels are absent
// from the result rather than reported as zero.
func (h GetDeliveryStatusBreakdownQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryStatusBreakdownQuery,
) ([]DeliveryStatusBreakdownQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	breakdown := make([]DeliveryStatusBreakdownQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			delivery_status,
			COUNT(*)
		FROM parcels
		GROUP BY delivery_status
		ORDER BY delivery_status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp DeliveryStatusBreakdownQueryResponse
		if err = rows.Scan(&resp.Status, &resp.Count); err != nil {
			return nil, err
		}
		breakdown = append(breakdown, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return breakdown, nil
}
