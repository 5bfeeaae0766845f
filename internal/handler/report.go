package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/earnbase/earnbot/internal/config"
	"github.com/earnbase/earnbot/internal/domain"
	"github.com/earnbase/earnbot/internal/gateway"
	"github.com/earnbase/earnbot/internal/middleware"
	"github.com/earnbase/earnbot/internal/state"
	tg "github.com/earnbase/earnbot/internal/telegram"
)

func (h *Handler) handleBeginReport(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	answerCallback(ctx, b, update)

	chatID := middleware.ChatID(update)
	sess := h.requireSession(ctx, b, chatID)
	if sess == nil {
		return
	}

	h.state.SetInput(chatID, state.InputState{Mode: state.InputReportSubject})
	tg.SendText(ctx, b, chatID, "🚩 What is the subject of your report?")
}

func (h *Handler) handleReportSubjectText(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	subject := strings.TrimSpace(text)
	if subject == "" {
		tg.SendText(ctx, b, chatID, "❌ Please provide a subject:")
		return
	}

	h.state.SetInput(chatID, state.InputState{Mode: state.InputReportDescription, Subject: subject})
	tg.SendText(ctx, b, chatID, "Describe the problem in detail:")
}

func (h *Handler) handleReportDescriptionText(ctx context.Context, b *bot.Bot, sess *domain.Session, chatID int64, text string) {
	input := h.state.Input(chatID)
	description := strings.TrimSpace(text)

	if err := domain.ValidateReport(input.Subject, description); err != nil {
		tg.SendText(ctx, b, chatID, "❌ "+err.Error())
		return
	}

	if err := h.gateway.SubmitReport(ctx, sess, input.Subject, description); err != nil {
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) {
			tg.SendText(ctx, b, chatID, fmt.Sprintf("❌ Failed to submit report: %s", apiErr.Message))
		} else {
			slog.Error("submit report", "error", err, "chat_id", chatID)
			tg.SendText(ctx, b, chatID, "❌ Failed to submit report. Please try again.")
		}
		return
	}

	h.state.ClearInput(chatID)
	h.evLog.LogReport(sess.Email, input.Subject)
	h.sendSelfClearing(ctx, b, chatID,
		"✅ Report submitted. Our team will review it shortly.")
}

// sendSelfClearing sends a confirmation that removes itself after a short
// interval, keeping the chat focused on the current screen.
func (h *Handler) sendSelfClearing(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	msg, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil || msg == nil {
		return
	}

	messageID := msg.ID
	time.AfterFunc(config.ReportSuccessClear, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		b.DeleteMessage(ctx, &bot.DeleteMessageParams{
			ChatID:    chatID,
			MessageID: messageID,
		})
	})
}
