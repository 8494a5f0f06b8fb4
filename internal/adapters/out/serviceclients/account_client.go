// Package serviceclients provides HTTP implementations of the outbound lookup
// ports. Each client targets one upstream service and exposes only the read
// operations order placement needs.
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
)

const defaultTimeout = 5 * time.Second

// AccountHTTPClient resolves user accounts over the user service's REST API.
type AccountHTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewAccountHTTPClient creates an account client for the given base URL.
// A non-positive timeout falls back to the default of 5 seconds.
func NewAccountHTTPClient(baseURL string, timeout time.Duration) (*AccountHTTPClient, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("baseURL", err)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &AccountHTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

type accountResponse struct {
	ID string `json:"id"`
}

// GetAccount fetches the account with the given ID.
// Returns errs.ObjectNotFoundError when the user service answers 404.
func (c *AccountHTTPClient) GetAccount(ctx context.Context, userID kernel.UUID) (ports.Account, error) {
	if err := userID.Validate(); err != nil {
		return ports.Account{}, err
	}

	endpoint := fmt.Sprintf("%s/api/users/%s", c.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ports.Account{}, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return ports.Account{}, fmt.Errorf("user service request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ports.Account{}, errs.NewObjectNotFoundError("user", userID.String())
	case resp.StatusCode != http.StatusOK:
		return ports.Account{}, fmt.Errorf("user service returned status %d", resp.StatusCode)
	}

	var body accountResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.Account{}, fmt.Errorf("user service response is malformed: %w", err)
	}

	id, err := kernel.UUIDFromString(body.ID)
	if err != nil {
		return ports.Account{}, err
	}

	return ports.Account{ID: id}, nil
}
