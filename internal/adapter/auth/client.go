// Package auth talks to the hosted auth service over its REST API.
package auth

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

const requestTimeout = 10 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ ports.AuthProvider = (*Client)(nil)

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID       string `json:"id"`
		Email    string `json:"email"`
		Metadata struct {
			FullName string `json:"full_name"`
		} `json:"user_metadata"`
	} `json:"user"`
}

// ExchangeCode trades an authorization code for a session.
func (c *Client) ExchangeCode(ctx context.Context, code string) (domain.Session, error) {
	body, err := json.Marshal(map[string]string{"auth_code": code})
	if err != nil {
		return domain.Session{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/token?grant_type=pkce", bytes.NewReader(body))
	if err != nil {
		return domain.Session{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Session{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Session{}, fmt.Errorf("%w: status %d", domain.ErrAuthCodeExchangeRejected, resp.StatusCode)
	}

	var parsed tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return domain.Session{}, err
	}
	if parsed.User.ID == "" || parsed.AccessToken == "" {
		return domain.Session{}, fmt.Errorf("%w: incomplete token response", domain.ErrAuthCodeExchangeRejected)
	}

	return domain.Session{
		UserID:      parsed.User.ID,
		Email:       parsed.User.Email,
		Name:        parsed.User.Metadata.FullName,
		AccessToken: parsed.AccessToken,
	}, nil
}

func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/logout", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sign-out failed: status %d", resp.StatusCode)
	}

	return nil
}
