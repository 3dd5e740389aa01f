package queries

import (
	"errors"

	"parcelshift/internal/pkg/errs"
	"parcelshift/internal/pkg/guard"
)

var (
	ErrGetAccountRoleQueryIsNotConstructed = errors.New(
		"GetAccountRoleQuery must be created via NewGetAccountRoleQuery constructor",
	)
)

// GetAccountRoleQuery resolves the role of one account by email. The
// frontend calls this after login to pick which dashboard to render.
type GetAccountRoleQuery struct {
	email string
	guard guard.ConstructorGuard
}

// NewGetAccountRoleQuery creates a role lookup query.
func NewGetAccountRoleQuery(email string) (GetAccountRoleQuery, error) {
	if email == "" {
		return GetAccountRoleQuery{}, errs.NewValueIsRequiredError("email")
	}
	return GetAccountRoleQuery{
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Email returns the account being resolved.
func (q GetAccountRoleQuery) Email() string {
	return q.email
}

// Validate ensures the query was created through the constructor.
func (q GetAccountRoleQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountRoleQueryIsNotConstructed)
}

// AccountRoleQueryResponse carries the resolved role label.
type AccountRoleQueryResponse struct {
	Role string
}
