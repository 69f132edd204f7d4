// Package payment talks to the hosted payment platform's functions API.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

const requestTimeout = 15 * time.Second

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ ports.PaymentProvider = (*Client)(nil)

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// planEntry is the provider's wire shape. Fields are validated into
// domain.Plan by the billing service; here we only decode.
type planEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Amount   int64  `json:"amount"`
	Interval string `json:"interval"`
	Popular  bool   `json:"popular"`
}

func (c *Client) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/get-plans", nil)
	if err != nil {
		return nil, err
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("plan listing failed: status %d", resp.StatusCode)
	}

	var entries []planEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, err
	}

	plans := make([]domain.Plan, 0, len(entries))
	for _, entry := range entries {
		plans = append(plans, domain.Plan{
			ID:       entry.ID,
			Name:     entry.Name,
			Amount:   entry.Amount,
			Interval: entry.Interval,
			Popular:  entry.Popular,
		})
	}

	return plans, nil
}

type checkoutResponse struct {
	URL string `json:"url"`
}

// CreateCheckoutSession opens a hosted checkout session and returns the URL
// the browser should be sent to. An empty URL is passed through for the
// caller to reject.
func (c *Client) CreateCheckoutSession(ctx context.Context, checkout domain.CheckoutRequest) (string, error) {
	body, err := json.Marshal(map[string]string{
		"price_id":   checkout.PriceID,
		"user_id":    checkout.UserID,
		"return_url": checkout.ReturnURL,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/create-checkout", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Customer-Email", checkout.Email)
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("checkout session creation failed: status %d", resp.StatusCode)
	}

	var parsed checkoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	return parsed.URL, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}
