// Package gateway performs authenticated requests against the earning
// platform's REST API. One method per backend capability; every call attaches
// a freshly issued bearer token for the calling session.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/earnbase/earnbot/internal/config"
	"github.com/earnbase/earnbot/internal/domain"
)

// TokenSource issues a short-lived bearer token for a refresh token. The
// identity client satisfies this.
type TokenSource interface {
	Token(ctx context.Context, refreshToken string) (string, error)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: config.RequestTimeout},
		tokens:     tokens,
	}
}

// Dashboard fetches the authoritative user profile.
func (c *Client) Dashboard(ctx context.Context, sess *domain.Session) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	if err := c.do(ctx, sess, http.MethodGet, "/api/dashboard", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Tasks fetches the available task list.
func (c *Client) Tasks(ctx context.Context, sess *domain.Session) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := c.do(ctx, sess, http.MethodGet, "/api/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// SubmitTask sends a task completion for review.
func (c *Client) SubmitTask(ctx context.Context, sess *domain.Session, taskID, submission string) error {
	body := map[string]string{
		"taskId":     taskID,
		"submission": submission,
	}
	return c.do(ctx, sess, http.MethodPost, "/api/submit-task", body, nil)
}

// TopEarners fetches the leaderboard in server order.
func (c *Client) TopEarners(ctx context.Context, sess *domain.Session) ([]domain.LeaderboardEntry, error) {
	var entries []domain.LeaderboardEntry
	if err := c.do(ctx, sess, http.MethodGet, "/api/top-earners", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// WithdrawalHistory fetches past withdrawal requests.
func (c *Client) WithdrawalHistory(ctx context.Context, sess *domain.Session) ([]domain.WithdrawalRecord, error) {
	var records []domain.WithdrawalRecord
	if err := c.do(ctx, sess, http.MethodGet, "/api/withdrawal-history", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// PaymentHistory fetches the account ledger.
func (c *Client) PaymentHistory(ctx context.Context, sess *domain.Session) ([]domain.PaymentHistoryRecord, error) {
	var records []domain.PaymentHistoryRecord
	if err := c.do(ctx, sess, http.MethodGet, "/api/payment-history", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// BonusStatus fetches the current bonus eligibility.
func (c *Client) BonusStatus(ctx context.Context, sess *domain.Session) (*domain.BonusStatus, error) {
	var status domain.BonusStatus
	if err := c.do(ctx, sess, http.MethodGet, "/api/bonus-status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// ClaimBonus claims the periodic bonus.
func (c *Client) ClaimBonus(ctx context.Context, sess *domain.Session) error {
	return c.do(ctx, sess, http.MethodPost, "/api/claim-bonus", nil, nil)
}

// RequestWithdrawal submits a withdrawal request. Local validation must have
// passed already; the backend revalidates.
func (c *Client) RequestWithdrawal(ctx context.Context, sess *domain.Session, amount decimal.Decimal, method domain.WithdrawalMethod, accountDetails string) error {
	body := map[string]any{
		"amount":          amount.InexactFloat64(),
		"method":          method,
		"account_details": accountDetails,
	}
	return c.do(ctx, sess, http.MethodPost, "/api/request-payment", body, nil)
}

// SubmitReport files a problem report.
func (c *Client) SubmitReport(ctx context.Context, sess *domain.Session, subject, description string) error {
	body := map[string]string{
		"subject":     subject,
		"description": description,
	}
	return c.do(ctx, sess, http.MethodPost, "/api/report", body, nil)
}

func (c *Client) do(ctx context.Context, sess *domain.Session, method, path string, body any, out any) error {
	token, err := c.tokens.Token(ctx, sess.RefreshToken)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		// Idempotency key so a resend after a transport failure is safe.
		req.Header.Set("X-Request-ID", uuid.NewString())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 300 {
		return apiError(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
	}
	return nil
}

func apiError(statusCode int, data []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Message:    http.StatusText(statusCode),
	}
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Message != "" {
			apiErr.Message = body.Message
		} else if body.Error != "" {
			apiErr.Message = body.Error
		}
	}
	return apiErr
}
