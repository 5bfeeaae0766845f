package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/earnbase/earnbot/internal/domain"
	"github.com/earnbase/earnbot/internal/identity"
	"github.com/earnbase/earnbot/internal/middleware"
	"github.com/earnbase/earnbot/internal/state"
	tg "github.com/earnbase/earnbot/internal/telegram"
)

func (h *Handler) handleBeginPasswordChange(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	answerCallback(ctx, b, update)

	chatID := middleware.ChatID(update)
	sess := h.requireSession(ctx, b, chatID)
	if sess == nil {
		return
	}

	h.state.SetInput(chatID, state.InputState{Mode: state.InputNewPassword})
	tg.SendText(ctx, b, chatID, "🔑 Enter your new password:")
}

func (h *Handler) handleNewPasswordText(ctx context.Context, b *bot.Bot, update *models.Update, chatID int64, password string) {
	// The message contains a credential; remove it from the chat.
	deleteMessage(ctx, b, update)

	if password == "" {
		tg.SendText(ctx, b, chatID, "❌ "+domain.ErrEmptyPassword.Error())
		return
	}

	h.state.SetInput(chatID, state.InputState{Mode: state.InputConfirmPassword, Password: password})
	tg.SendText(ctx, b, chatID, "Confirm your new password:")
}

func (h *Handler) handleConfirmPasswordText(ctx context.Context, b *bot.Bot, update *models.Update, sess *domain.Session, chatID int64, confirm string) {
	input := h.state.Input(chatID)
	deleteMessage(ctx, b, update)

	if err := domain.ValidatePasswordChange(input.Password, confirm); err != nil {
		if errors.Is(err, domain.ErrPasswordMismatch) {
			// Restart from the first field so the pair is re-entered together.
			h.state.SetInput(chatID, state.InputState{Mode: state.InputNewPassword})
			tg.SendText(ctx, b, chatID, "❌ Passwords do not match. Enter your new password:")
			return
		}
		tg.SendText(ctx, b, chatID, "❌ "+err.Error())
		return
	}

	if err := h.identity.UpdatePassword(ctx, sess.RefreshToken, input.Password); err != nil {
		h.state.ClearInput(chatID)
		var perr *identity.ProviderError
		if errors.As(err, &perr) {
			tg.SendText(ctx, b, chatID, fmt.Sprintf("❌ Password change failed: %s", perr.Message))
		} else {
			slog.Error("update password", "error", err, "chat_id", chatID)
			tg.SendText(ctx, b, chatID, "❌ Password change failed. Please try again.")
		}
		return
	}

	h.state.ClearInput(chatID)
	tg.SendText(ctx, b, chatID, "✅ Your password has been updated.")
}
