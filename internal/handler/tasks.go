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
	"github.com/earnbase/earnbot/internal/gateway"
	"github.com/earnbase/earnbot/internal/middleware"
	"github.com/earnbase/earnbot/internal/state"
	tg "github.com/earnbase/earnbot/internal/telegram"
	"github.com/earnbase/earnbot/internal/view"
)

func (h *Handler) handleTaskDetail(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	answerCallback(ctx, b, update)

	chatID := middleware.ChatID(update)
	sess := h.requireSession(ctx, b, chatID)
	if sess == nil {
		return
	}

	taskID := strings.TrimPrefix(update.CallbackQuery.Data, "task_")
	task, err := h.state.TaskByID(chatID, taskID)
	if err != nil {
		tg.SendText(ctx, b, chatID, "❌ Task not found. It may have been removed; reopen the task list.")
		return
	}

	// Server instructions may carry markup; reduce to plain text for display.
	task.Instruction = tg.PlainInstruction(task.Instruction)
	if err := tg.SendFragment(ctx, b, chatID, view.TaskDetail(task)); err != nil {
		slog.Error("render task detail", "error", err, "task_id", taskID)
	}
}

func (h *Handler) handleBeginSubmission(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	answerCallback(ctx, b, update)

	chatID := middleware.ChatID(update)
	sess := h.requireSession(ctx, b, chatID)
	if sess == nil {
		return
	}

	taskID := strings.TrimPrefix(update.CallbackQuery.Data, "submit_")
	if _, err := h.state.TaskByID(chatID, taskID); err != nil {
		tg.SendText(ctx, b, chatID, "❌ Task not found. It may have been removed; reopen the task list.")
		return
	}

	h.state.SetInput(chatID, state.InputState{Mode: state.InputSubmission, TaskID: taskID})
	tg.SendText(ctx, b, chatID, "✍️ Send your completed work as a single message:")
}

func (h *Handler) handleSubmissionText(ctx context.Context, b *bot.Bot, sess *domain.Session, chatID int64, text string) {
	input := h.state.Input(chatID)

	if err := domain.ValidateSubmission(text); err != nil {
		tg.SendText(ctx, b, chatID, "Please complete the task submission:")
		return
	}

	if err := h.gateway.SubmitTask(ctx, sess, input.TaskID, strings.TrimSpace(text)); err != nil {
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) {
			tg.SendText(ctx, b, chatID, fmt.Sprintf("❌ Failed to submit task: %s", apiErr.Message))
		} else {
			slog.Error("submit task", "error", err, "task_id", input.TaskID)
			tg.SendText(ctx, b, chatID, "❌ Failed to submit task. Please try again.")
		}
		return
	}

	h.state.ClearInput(chatID)
	tg.SendText(ctx, b, chatID,
		"✅ Task Submitted\n\nYour task has been submitted for review. You will be notified once it is approved.")

	// Reflect the authoritative balance after the mutation.
	h.refreshProfile(ctx, sess, chatID)
}

// refreshProfile re-fetches the user profile into the current generation.
func (h *Handler) refreshProfile(ctx context.Context, sess *domain.Session, chatID int64) {
	gen := h.state.Generation(chatID)
	profile, err := h.gateway.Dashboard(ctx, sess)
	if err != nil {
		h.loadError("refresh profile", err, chatID)
		return
	}
	h.state.SetProfile(chatID, gen, profile)
}
