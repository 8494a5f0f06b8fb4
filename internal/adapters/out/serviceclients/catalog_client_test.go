package serviceclients_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/serviceclients"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogHTTPClient_ValidInput(t *testing.T) {
	client, err := serviceclients.NewCatalogHTTPClient("http://localhost:8082", 5*time.Second)
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewCatalogHTTPClient_EmptyBaseURL(t *testing.T) {
	_, err := serviceclients.NewCatalogHTTPClient("", 5*time.Second)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCatalogHTTPClient_GetRestaurant_Success(t *testing.T) {
	restaurantID := kernel.NewUUID()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/restaurants/"+restaurantID.String(), r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"id": %q, "name": "Luigi's", "status": "ACTIVE"}`, restaurantID)
	}))
	defer server.Close()

	client, err := serviceclients.NewCatalogHTTPClient(server.URL, time.Second)
	require.NoError(t, err)

	restaurant, err := client.GetRestaurant(context.Background(), restaurantID)

	require.NoError(t, err)
	assert.True(t, restaurant.ID.IsEqual(restaurantID))
	assert.Equal(t, "Luigi's", restaurant.Name)
	assert.Equal(t, ports.RestaurantActive, restaurant.Status)
}

func TestCatalogHTTPClient_GetRestaurant_InactiveStatusPassedThrough(t *testing.T) {
	restaurantID := kernel.NewUUID()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `{"id": %q, "name": "Closed Kitchen", "status": "SUSPENDED"}`, restaurantID)
	}))
	defer server.Close()

	client, err := serviceclients.NewCatalogHTTPClient(server.URL, time.Second)
	require.NoError(t, err)

	restaurant, err := client.GetRestaurant(context.Background(), restaurantID)

	require.NoError(t, err)
	assert.Equal(t, ports.RestaurantSuspended, restaurant.Status)
}

func TestCatalogHTTPClient_GetRestaurant_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, err := serviceclients.NewCatalogHTTPClient(server.URL, time.Second)
	require.NoError(t, err)

	_, err = client.GetRestaurant(context.Background(), kernel.NewUUID())

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCatalogHTTPClient_GetMenuItem_Success(t *testing.T) {
	restaurantID := kernel.NewUUID()
	itemID := kernel.NewUUID()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expectedPath := fmt.Sprintf("/api/restaurants/%s/menu-items/%s", restaurantID, itemID)
		assert.Equal(t, expectedPath, r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"id": %q, "name": "Margherita", "price": "9.50", "status": "AVAILABLE"}`, itemID)
	}))
	defer server.Close()

	client, err := serviceclients.NewCatalogHTTPClient(server.URL, time.Second)
	require.NoError(t, err)

	item, err := client.GetMenuItem(context.Background(), restaurantID, itemID)

	require.NoError(t, err)
	assert.True(t, item.ID.IsEqual(itemID))
	assert.Equal(t, "Margherita", item.Name)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("9.50")))
	assert.Equal(t, ports.MenuItemAvailable, item.Status)
}

func TestCatalogHTTPClient_GetMenuItem_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, err := serviceclients.NewCatalogHTTPClient(server.URL, time.Second)
	require.NoError(t, err)

	itemID := kernel.NewUUID()
	_, err = client.GetMenuItem(context.Background(), kernel.NewUUID(), itemID)

	require.Error(t, err)

	var notFoundErr *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "menu item", notFoundErr.ParamName)
}

func TestCatalogHTTPClient_GetMenuItem_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := serviceclients.NewCatalogHTTPClient(server.URL, time.Second)
	require.NoError(t, err)

	_, err = client.GetMenuItem(context.Background(), kernel.NewUUID(), kernel.NewUUID())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestCatalogHTTPClient_GetMenuItem_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"price": not-a-number}`)
	}))
	defer server.Close()

	client, err := serviceclients.NewCatalogHTTPClient(server.URL, time.Second)
	require.NoError(t, err)

	_, err = client.GetMenuItem(context.Background(), kernel.NewUUID(), kernel.NewUUID())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed")
}

func TestCatalogHTTPClient_GetMenuItem_InvalidIdentifiers(t *testing.T) {
	client, err := serviceclients.NewCatalogHTTPClient("http://localhost:8082", time.Second)
	require.NoError(t, err)

	_, err = client.GetMenuItem(context.Background(), kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = client.GetMenuItem(context.Background(), kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
