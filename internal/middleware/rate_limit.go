package middleware

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/earnbase/earnbot/internal/config"
	"github.com/earnbase/earnbot/internal/repository"
)

// RateLimit returns middleware that enforces per-minute rate limits. Only
// messages count; callbacks are cheap acknowledgements. Admins are exempt.
func RateLimit(store *repository.RateLimitStore, cfg *config.Config) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if update.Message == nil {
				next(ctx, b, update)
				return
			}

			chatID := update.Message.Chat.ID

			userID := chatID
			if update.Message.From != nil {
				userID = update.Message.From.ID
			}
			if cfg.IsAdmin(userID) {
				next(ctx, b, update)
				return
			}

			count, err := store.Increment(ctx, chatID)
			if err != nil {
				slog.Error("rate limit check failed", "error", err, "chat_id", chatID)
				next(ctx, b, update)
				return
			}

			if count > int64(config.RateLimitPerMinute) {
				slog.Debug("rate limited", "chat_id", chatID, "count", count)
				b.SendMessage(ctx, &bot.SendMessageParams{
					ChatID: chatID,
					Text:   "⏳ Too many requests. Please slow down.",
				})
				return
			}

			next(ctx, b, update)
		}
	}
}
