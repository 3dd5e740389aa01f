package queries_test

import (
	"testing"

	"parcelshift/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetParcelsQuery_Valid(t *testing.T) {
	query := queries.NewGetParcelsQuery("")
	err := query.Validate()
	require.NoError(t, err)
	assert.Empty(t, query.CreatedBy())
}

func TestNewGetParcelsQuery_WithCreator(t *testing.T) {
	query := queries.NewGetParcelsQuery("sender@example.com")
	require.NoError(t, query.Validate())
	assert.Equal(t, "sender@example.com", query.CreatedBy())
}

func TestGetParcelsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetParcelsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetParcelsQueryIsNotConstructed)
}
