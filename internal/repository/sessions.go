package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/earnbase/earnbot/internal/domain"
)

// SessionStore persists the chat → signed-in principal binding so users stay
// signed in across bot restarts.
type SessionStore struct {
	db *pgxpool.Pool
}

func NewSessionStore(db *pgxpool.Pool) *SessionStore {
	return &SessionStore{db: db}
}

func (s *SessionStore) Save(ctx context.Context, sess *domain.Session) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO sessions (chat_id, email, refresh_token)
		VALUES ($1, $2, $3)
		ON CONFLICT (chat_id) DO UPDATE
		SET email = EXCLUDED.email,
		    refresh_token = EXCLUDED.refresh_token,
		    updated_at = now()
	`, sess.ChatID, sess.Email, sess.RefreshToken)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, chatID int64) (*domain.Session, error) {
	var sess domain.Session
	err := s.db.QueryRow(ctx, `
		SELECT chat_id, email, refresh_token, created_at, updated_at
		FROM sessions WHERE chat_id = $1
	`, chatID).Scan(&sess.ChatID, &sess.Email, &sess.RefreshToken, &sess.CreatedAt, &sess.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, chatID int64) error {
	_, err := s.db.Exec(ctx, `DELETE FROM sessions WHERE chat_id = $1`, chatID)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
