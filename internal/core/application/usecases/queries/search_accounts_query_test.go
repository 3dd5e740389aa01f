package queries_test

import (
	"testing"

	"parcelshift/internal/core/application/usecases/queries"
	"parcelshift/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchAccountsQuery_Valid(t *testing.T) {
	query, err := queries.NewSearchAccountsQuery("ali")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "ali", query.Term())
}

func TestNewSearchAccountsQuery_EmptyTerm(t *testing.T) {
	_, err := queries.NewSearchAccountsQuery("")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewGetAccountRoleQuery_Valid(t *testing.T) {
	query, err := queries.NewGetAccountRoleQuery("user@example.com")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "user@example.com", query.Email())
}

func TestNewGetAccountRoleQuery_EmptyEmail(t *testing.T) {
	_, err := queries.NewGetAccountRoleQuery("")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewGetPaymentsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetPaymentsQuery("payer@example.com")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "payer@example.com", query.PayerEmail())
}

func TestNewGetPaymentsQuery_EmptyEmail(t *testing.T) {
	_, err := queries.NewGetPaymentsQuery("")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
