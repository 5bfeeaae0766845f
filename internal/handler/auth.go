package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/earnbase/earnbot/internal/domain"
	"github.com/earnbase/earnbot/internal/identity"
	"github.com/earnbase/earnbot/internal/state"
	tg "github.com/earnbase/earnbot/internal/telegram"
)

func (h *Handler) handleSignInEmail(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	email := strings.TrimSpace(text)
	if email == "" || !strings.Contains(email, "@") {
		tg.SendText(ctx, b, chatID, "Please enter a valid email address:")
		return
	}

	h.state.SetInput(chatID, state.InputState{Mode: state.InputSignInPassword, Email: email})
	tg.SendText(ctx, b, chatID, "Enter your password:")
}

func (h *Handler) handleSignInPassword(ctx context.Context, b *bot.Bot, update *models.Update, chatID int64, password string) {
	input := h.state.Input(chatID)

	// The message contains a credential; remove it from the chat.
	deleteMessage(ctx, b, update)

	if password == "" {
		tg.SendText(ctx, b, chatID, "Please enter your password:")
		return
	}

	result, err := h.identity.SignIn(ctx, input.Email, password)
	if err != nil {
		var perr *identity.ProviderError
		if errors.As(err, &perr) {
			tg.SendText(ctx, b, chatID, fmt.Sprintf("❌ Sign-in failed: %s\n\nEnter your account email to try again:", perr.Message))
		} else {
			slog.Error("sign in", "error", err, "chat_id", chatID)
			tg.SendText(ctx, b, chatID, "❌ Sign-in failed. Please try again.\n\nEnter your account email:")
		}
		h.state.SetInput(chatID, state.InputState{Mode: state.InputSignInEmail})
		return
	}

	sess := &domain.Session{
		ChatID:       chatID,
		Email:        result.Email,
		RefreshToken: result.RefreshToken,
	}
	if err := h.sessions.Save(ctx, sess); err != nil {
		slog.Error("save session", "error", err, "chat_id", chatID)
		tg.SendText(ctx, b, chatID, "❌ Something went wrong. Please try /start again.")
		return
	}

	h.state.ClearInput(chatID)
	h.evLog.LogSignIn(chatID, sess.Email)

	tg.SendText(ctx, b, chatID, fmt.Sprintf("✅ Signed in as %s", sess.Email))
	h.showView(ctx, b, sess, chatID, "tasks")
}

func deleteMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	b.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    update.Message.Chat.ID,
		MessageID: update.Message.ID,
	})
}
