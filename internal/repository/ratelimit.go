package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RateLimitStore counts updates per chat in one-minute windows.
type RateLimitStore struct {
	db *pgxpool.Pool
}

func NewRateLimitStore(db *pgxpool.Pool) *RateLimitStore {
	return &RateLimitStore{db: db}
}

// Increment bumps the counter for the chat's current window and returns the
// new count.
func (s *RateLimitStore) Increment(ctx context.Context, chatID int64) (int64, error) {
	var count int64
	err := s.db.QueryRow(ctx, `
		INSERT INTO rate_limits (chat_id, window_start, count)
		VALUES ($1, date_trunc('minute', now()), 1)
		ON CONFLICT (chat_id, window_start) DO UPDATE
		SET count = rate_limits.count + 1
		RETURNING count
	`, chatID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("increment rate limit: %w", err)
	}
	return count, nil
}

// CleanupStale drops windows old enough to never be read again.
func (s *RateLimitStore) CleanupStale(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		DELETE FROM rate_limits WHERE window_start < now() - interval '5 minutes'
	`)
	if err != nil {
		return fmt.Errorf("cleanup rate limits: %w", err)
	}
	return nil
}
