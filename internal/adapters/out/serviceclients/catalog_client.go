package serviceclients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CatalogHTTPClient resolves restaurants and menu items over the restaurant
// service's REST API. Prices come back as JSON strings to avoid float
// rounding on the wire.
type CatalogHTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewCatalogHTTPClient creates a catalog client for the given base URL.
// A non-positive timeout falls back to the default of 5 seconds.
func NewCatalogHTTPClient(baseURL string, timeout time.Duration) (*CatalogHTTPClient, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("baseURL", err)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &CatalogHTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

type restaurantResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type menuItemResponse struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Status string          `json:"status"`
}

// GetRestaurant fetches the restaurant with the given ID.
// Returns errs.ObjectNotFoundError when the restaurant service answers 404.
func (c *CatalogHTTPClient) GetRestaurant(
	ctx context.Context,
	restaurantID kernel.UUID,
) (ports.Restaurant, error) {
	if err := restaurantID.Validate(); err != nil {
		return ports.Restaurant{}, err
	}

	endpoint := fmt.Sprintf("%s/api/restaurants/%s", c.baseURL, restaurantID)

	var body restaurantResponse
	if err := c.getJSON(ctx, endpoint, "restaurant", restaurantID.String(), &body); err != nil {
		return ports.Restaurant{}, err
	}

	id, err := kernel.UUIDFromString(body.ID)
	if err != nil {
		return ports.Restaurant{}, err
	}

	return ports.Restaurant{
		ID:     id,
		Name:   body.Name,
		Status: ports.RestaurantStatus(body.Status),
	}, nil
}

// GetMenuItem fetches a single menu item scoped to its restaurant.
// Returns errs.ObjectNotFoundError when the restaurant service answers 404.
func (c *CatalogHTTPClient) GetMenuItem(
	ctx context.Context,
	restaurantID, itemID kernel.UUID,
) (ports.MenuItem, error) {
	if err := restaurantID.Validate(); err != nil {
		return ports.MenuItem{}, err
	}
	if err := itemID.Validate(); err != nil {
		return ports.MenuItem{}, err
	}

	endpoint := fmt.Sprintf("%s/api/restaurants/%s/menu-items/%s", c.baseURL, restaurantID, itemID)

	var body menuItemResponse
	if err := c.getJSON(ctx, endpoint, "menu item", itemID.String(), &body); err != nil {
		return ports.MenuItem{}, err
	}

	id, err := kernel.UUIDFromString(body.ID)
	if err != nil {
		return ports.MenuItem{}, err
	}

	return ports.MenuItem{
		ID:     id,
		Name:   body.Name,
		Price:  body.Price,
		Status: ports.MenuItemStatus(body.Status),
	}, nil
}

func (c *CatalogHTTPClient) getJSON(
	ctx context.Context,
	endpoint, objectName, objectID string,
	out any,
) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("restaurant service request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errs.NewObjectNotFoundError(objectName, objectID)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("restaurant service returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("restaurant service response is malformed: %w", err)
	}

	return nil
}
