package queries

import (
	"errors"
	"time"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/pkg/errs"
	"parcelshift/internal/pkg/guard"
)

// searchAccountsLimit caps the admin search result so partial terms never
// pull the whole accounts table.
const searchAccountsLimit = 10

var (
	ErrSearchAccountsQueryIsNotConstructed = errors.New(
		"SearchAccountsQuery must be created via NewSearchAccountsQuery constructor",
	)
)

// SearchAccountsQuery finds accounts whose name or email contains the given
// term, case-insensitively. Backs the admin user search box.
type SearchAccountsQuery struct {
	term  string
	guard guard.ConstructorGuard
}

// NewSearchAccountsQuery creates an account search query.
func NewSearchAccountsQuery(term string) (SearchAccountsQuery, error) {
	if term == "" {
		return SearchAccountsQuery{}, errs.NewValueIsRequiredError("term")
	}
	return SearchAccountsQuery{
		term:  term,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Term returns the substring being searched for.
func (q SearchAccountsQuery) Term() string {
	return q.term
}

// Validate ensures the query was created through the constructor.
func (q SearchAccountsQuery) Validate() error {
	return q.guard.Validate(ErrSearchAccountsQueryIsNotConstructed)
}

// AccountQueryResponse is the account read model. Password material never
// leaves the write side.
type AccountQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}
