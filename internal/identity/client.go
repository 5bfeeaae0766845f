// Package identity talks to the external identity provider: password
// sign-in, refresh-token exchange for short-lived bearer tokens and password
// updates. Tokens are never cached; callers fetch a fresh one per request,
// which tolerates provider-side rotation.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/earnbase/earnbot/internal/config"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: config.RequestTimeout},
	}
}

// ProviderError carries the provider's own message, surfaced to the user
// verbatim on password updates.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return e.Message
}

// SignInResult is the long-lived part of a successful sign-in.
type SignInResult struct {
	Email        string `json:"email"`
	RefreshToken string `json:"refresh_token"`
}

// SignIn exchanges credentials for a refresh token.
func (c *Client) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	var result SignInResult
	err := c.post(ctx, "/v1/signin", map[string]string{
		"email":    email,
		"password": password,
	}, &result)
	if err != nil {
		return nil, err
	}
	if result.Email == "" {
		result.Email = email
	}
	return &result, nil
}

// Token exchanges a refresh token for a fresh short-lived bearer token.
func (c *Client) Token(ctx context.Context, refreshToken string) (string, error) {
	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	err := c.post(ctx, "/v1/token", map[string]string{
		"grant_type":    "refresh_token",
		"refresh_token": refreshToken,
	}, &result)
	if err != nil {
		return "", err
	}
	if result.AccessToken == "" {
		return "", &ProviderError{Message: "provider returned no access token"}
	}
	return result.AccessToken, nil
}

// UpdatePassword sets a new password for the signed-in principal.
func (c *Client) UpdatePassword(ctx context.Context, refreshToken, newPassword string) error {
	token, err := c.Token(ctx, refreshToken)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(map[string]string{"new_password": newPassword})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/password", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return providerError(resp)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("identity request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return providerError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}

func providerError(resp *http.Response) error {
	perr := &ProviderError{
		StatusCode: resp.StatusCode,
		Message:    resp.Status,
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return perr
	}
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Message != "" {
			perr.Message = body.Message
		} else if body.Error != "" {
			perr.Message = body.Error
		}
	}
	return perr
}
