package handler

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/earnbase/earnbot/internal/middleware"
	"github.com/earnbase/earnbot/internal/state"
	tg "github.com/earnbase/earnbot/internal/telegram"
)

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Chat.Type != "private" {
		return
	}

	chatID := update.Message.Chat.ID
	sess := middleware.GetSession(ctx)
	if sess == nil {
		h.beginSignIn(ctx, b, chatID)
		return
	}

	tg.SendText(ctx, b, chatID, fmt.Sprintf("👋 Welcome back, %s!", sess.Email))
	h.showView(ctx, b, sess, chatID, "tasks")
}

func (h *Handler) handleLogin(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	if sess := middleware.GetSession(ctx); sess != nil {
		tg.SendText(ctx, b, chatID, fmt.Sprintf("You are already signed in as %s. Use /logout first.", sess.Email))
		return
	}
	h.beginSignIn(ctx, b, chatID)
}

func (h *Handler) handleLogout(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	sess := middleware.GetSession(ctx)
	if sess == nil {
		tg.SendText(ctx, b, chatID, "You are not signed in.")
		return
	}

	if err := h.sessions.Delete(ctx, chatID); err != nil {
		tg.SendText(ctx, b, chatID, "❌ Failed to sign out. Please try again.")
		return
	}
	h.state.Clear(chatID)
	tg.SendText(ctx, b, chatID, "👋 Signed out. Use /start to sign in again.")
}

func (h *Handler) beginSignIn(ctx context.Context, b *bot.Bot, chatID int64) {
	h.state.SetInput(chatID, state.InputState{Mode: state.InputSignInEmail})
	tg.SendText(ctx, b, chatID,
		"👋 Welcome to Earnbase!\n\nSign in to see your tasks and balance.\nEnter your account email:")
}
