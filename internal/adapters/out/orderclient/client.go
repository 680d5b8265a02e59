// Package orderclient calls the order service over HTTP. The billing side
// uses it to confirm an order exists before drafting an invoice for it.
package orderclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"lastmile/internal/core/domain/model/kernel"
)

// DefaultTimeout bounds the existence check so a slow order service cannot
// hold up invoice creation indefinitely.
const DefaultTimeout = 5 * time.Second

var ErrOrderServiceUnavailable = errors.New("order service request failed")

// Client implements ports.OrderExistenceChecker against the order service
// HTTP API.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client for the order service at baseURL. A
// non-positive timeout falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("orderclient: base URL is required")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}, nil
}

// OrderExists asks the order service whether the given order exists. The
// endpoint answers with a bare JSON boolean. A transport failure or an
// unexpected status is returned as an error so the caller can tell an
// outage apart from a confirmed absence.
func (c *Client) OrderExists(ctx context.Context, orderID kernel.UUID) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}

	url := fmt.Sprintf("%s/orders/exists/%s", c.baseURL, orderID.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return false, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrOrderServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("%w: unexpected status %d", ErrOrderServiceUnavailable, resp.StatusCode)
	}

	var exists bool
	if err := json.NewDecoder(resp.Body).Decode(&exists); err != nil {
		return false, fmt.Errorf("%w: %w", ErrOrderServiceUnavailable, err)
	}

	return exists, nil
}
