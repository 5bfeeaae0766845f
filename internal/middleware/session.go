package middleware

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/earnbase/earnbot/internal/domain"
	"github.com/earnbase/earnbot/internal/repository"
)

type ctxKey string

const sessionKey ctxKey = "session"

// GetSession extracts the chat's signed-in session from context, or nil when
// the chat is not signed in.
func GetSession(ctx context.Context) *domain.Session {
	s, ok := ctx.Value(sessionKey).(*domain.Session)
	if !ok {
		return nil
	}
	return s
}

// SessionLoader returns middleware that loads the chat's session into
// context. Handlers decide what an unauthenticated chat may do.
func SessionLoader(store *repository.SessionStore) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			chatID := ChatID(update)
			if chatID == 0 {
				next(ctx, b, update)
				return
			}

			sess, err := store.Get(ctx, chatID)
			if err != nil {
				if !errors.Is(err, domain.ErrSessionNotFound) {
					slog.Error("load session", "error", err, "chat_id", chatID)
				}
				next(ctx, b, update)
				return
			}

			next(context.WithValue(ctx, sessionKey, sess), b, update)
		}
	}
}
