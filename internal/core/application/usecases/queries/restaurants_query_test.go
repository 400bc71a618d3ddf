package queries_test

import (
	"testing"

	"mealdash/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRestaurantsQuery_Valid(t *testing.T) {
	query := queries.NewRestaurantsQuery()
	require.NoError(t, query.Validate())
}

func TestRestaurantsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.RestaurantsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrRestaurantsQueryIsNotConstructed)
}
