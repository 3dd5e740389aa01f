package queries

import (
	"context"
	"time"

	"parcelshift/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchAccountsQueryHandler runs the admin account search.
type SearchAccountsQueryHandler struct {
	db *gorm.DB
}

// NewSearchAccountsQueryHandler creates a handler for account searches.
func NewSearchAccountsQueryHandler(db *gorm.DB) SearchAccountsQueryHandler {
	return SearchAccountsQueryHandler{db: db}
}

// Handle executes the search, matching the term against name and email and
// returning at most ten accounts.
func (h SearchAccountsQueryHandler) Handle(
	ctx context.Context,
	query SearchAccountsQuery,
) ([]AccountQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pattern := "%" + query.Term() + "%"

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			role,
			created_at
		FROM accounts
		WHERE name ILIKE ? OR email ILIKE ?
		ORDER BY created_at DESC
		LIMIT ?
	`, pattern, pattern, searchAccountsLimit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]AccountQueryResponse, 0, searchAccountsLimit)
	for rows.Next() {
		var resp AccountQueryResponse
		var id uuid.UUID
		var createdAt time.Time

		err = rows.Scan(&id, &resp.Name, &resp.Email, &resp.Role, &createdAt)
		if err != nil {
			return nil, err
		}

		accountID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = accountID
		resp.CreatedAt = createdAt
		accounts = append(accounts, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}
