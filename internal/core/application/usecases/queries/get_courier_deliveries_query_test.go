package queries_test

import (
	"testing"

	"deliveryhub/internal/core/application/usecases/queries"
	"deliveryhub/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCourierDeliveriesQuery_Valid(t *testing.T) {
	courierID := kernel.NewUUID()

	query, err := queries.NewGetCourierDeliveriesQuery(courierID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.CourierID().IsEqual(courierID))
}

func TestNewGetCourierDeliveriesQuery_EmptyCourierID(t *testing.T) {
	_, err := queries.NewGetCourierDeliveriesQuery(kernel.UUID{})

	require.Error(t, err)
}

func TestGetCourierDeliveriesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCourierDeliveriesQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCourierDeliveriesQueryIsNotConstructed)
}
