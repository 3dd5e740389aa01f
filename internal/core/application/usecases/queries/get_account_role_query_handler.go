package queries

import (
	"context"
	"database/sql"
	"errors"

	"parcelshift/internal/core/domain/model/account"

	"gorm.io/gorm"
)

// GetAccountRoleQueryHandler resolves account roles on the read side.
type GetAccountRoleQueryHandler struct {
	db *gorm.DB
}

// NewGetAccountRoleQueryHandler creates a handler for role lookups.
func NewGetAccountRoleQueryHandler(db *gorm.DB) GetAccountRoleQueryHandler {
	return GetAccountRoleQueryHandler{db: db}
}

// Handle executes the lookup. An email with no registered account resolves
// to the default user role rather than an error, so role checks on clients
// never have to special-case unregistered visitors.
func (h GetAccountRoleQueryHandler) Handle(
	ctx context.Context,
	query GetAccountRoleQuery,
) (AccountRoleQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AccountRoleQueryResponse{}, err
	}

	var resp AccountRoleQueryResponse
	err := h.db.WithContext(ctx).Raw(`
		SELECT role
		FROM accounts
		WHERE email = ?
	`, query.Email()).Row().Scan(&resp.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return AccountRoleQueryResponse{Role: account.RoleUser.String()}, nil
	}
	if err != nil {
		return AccountRoleQueryResponse{}, err
	}

	return resp, nil
}
