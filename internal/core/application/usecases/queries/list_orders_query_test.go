package queries_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersQuery_EmptyFilter(t *testing.T) {
	query, err := queries.NewListOrdersQuery(queries.ListOrdersFilter{})
	require.NoError(t, err)

	assert.NoError(t, query.Validate())
	assert.Equal(t, queries.ListOrdersFilter{}, query.Filter())
}

func TestNewListOrdersQuery_FullFilter(t *testing.T) {
	userID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	status := order.Confirmed
	from := time.Now().UTC().Add(-time.Hour)
	to := time.Now().UTC()

	query, err := queries.NewListOrdersQuery(queries.ListOrdersFilter{
		UserID:       &userID,
		RestaurantID: &restaurantID,
		Status:       &status,
		CreatedFrom:  &from,
		CreatedTo:    &to,
	})
	require.NoError(t, err)

	filter := query.Filter()
	assert.Equal(t, userID, *filter.UserID)
	assert.Equal(t, restaurantID, *filter.RestaurantID)
	assert.Equal(t, order.Confirmed, *filter.Status)
	assert.Equal(t, from, *filter.CreatedFrom)
	assert.Equal(t, to, *filter.CreatedTo)
}

func TestNewListOrdersQuery_InvalidUserID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := queries.NewListOrdersQuery(queries.ListOrdersFilter{UserID: &invalidID})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewListOrdersQuery_InvalidRestaurantID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := queries.NewListOrdersQuery(queries.ListOrdersFilter{RestaurantID: &invalidID})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewListOrdersQuery_InvalidStatus(t *testing.T) {
	status := order.Unknown
	_, err := queries.NewListOrdersQuery(queries.ListOrdersFilter{Status: &status})
	require.Error(t, err)
}

func TestNewListOrdersQuery_ReversedDateRange(t *testing.T) {
	from := time.Now().UTC()
	to := from.Add(-time.Hour)
	_, err := queries.NewListOrdersQuery(queries.ListOrdersFilter{
		CreatedFrom: &from,
		CreatedTo:   &to,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creation time range")
}

func TestNewListOrdersQuery_OpenEndedRangesAreValid(t *testing.T) {
	from := time.Now().UTC()

	_, err := queries.NewListOrdersQuery(queries.ListOrdersFilter{CreatedFrom: &from})
	require.NoError(t, err)

	_, err = queries.NewListOrdersQuery(queries.ListOrdersFilter{CreatedTo: &from})
	require.NoError(t, err)
}

func TestListOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ListOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)
}
