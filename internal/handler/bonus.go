package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/earnbase/earnbot/internal/config"
	"github.com/earnbase/earnbot/internal/gateway"
	"github.com/earnbase/earnbot/internal/middleware"
	tg "github.com/earnbase/earnbot/internal/telegram"
)

func (h *Handler) handleClaimBonus(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	chatID := middleware.ChatID(update)
	sess := h.requireSession(ctx, b, chatID)
	if sess == nil {
		answerCallback(ctx, b, update)
		return
	}

	if err := h.gateway.ClaimBonus(ctx, sess); err != nil {
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) {
			// Claim-too-early and similar rejections come back as API errors.
			callbackAlert(ctx, b, update, apiErr.Message)
		} else {
			slog.Error("claim bonus", "error", err, "chat_id", chatID)
			callbackAlert(ctx, b, update, "Failed to claim bonus. Please try again.")
		}
		return
	}

	answerCallback(ctx, b, update)
	h.evLog.LogBonusClaim(sess.Email)

	tg.SendText(ctx, b, chatID,
		fmt.Sprintf("🎉 You claimed your $%.2f bonus! It has been added to your balance.", config.BonusAmount))

	// The claim changed both the balance and the bonus countdown.
	h.refreshProfile(ctx, sess, chatID)
	h.showView(ctx, b, sess, chatID, "bonus")
}
