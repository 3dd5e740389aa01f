package queries_test

import (
	"testing"

	"parcelshift/internal/core/application/usecases/queries"
	"parcelshift/internal/core/domain/model/rider"
	"parcelshift/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetRidersQuery_Valid(t *testing.T) {
	query, err := queries.NewGetRidersQuery(rider.Pending)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, rider.Pending, query.Status())
}

func TestNewGetRidersQuery_UnknownStatus(t *testing.T) {
	_, err := queries.NewGetRidersQuery(rider.StatusUnknown)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetRidersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetRidersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetRidersQueryIsNotConstructed)
}

func TestNewGetAvailableRidersQuery_Valid(t *testing.T) {
	query, err := queries.NewGetAvailableRidersQuery("north")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "north", query.District())
}

func TestNewGetAvailableRidersQuery_EmptyDistrict(t *testing.T) {
	_, err := queries.NewGetAvailableRidersQuery("")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
