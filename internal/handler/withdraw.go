package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/shopspring/decimal"

	"github.com/earnbase/earnbot/internal/domain"
	"github.com/earnbase/earnbot/internal/gateway"
	"github.com/earnbase/earnbot/internal/middleware"
	"github.com/earnbase/earnbot/internal/state"
	tg "github.com/earnbase/earnbot/internal/telegram"
	"github.com/earnbase/earnbot/internal/view"
)

func (h *Handler) handleBeginWithdrawal(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	chatID := middleware.ChatID(update)
	sess := h.requireSession(ctx, b, chatID)
	if sess == nil {
		answerCallback(ctx, b, update)
		return
	}

	profile := h.state.Profile(chatID)
	if profile == nil {
		fetched, err := h.gateway.Dashboard(ctx, sess)
		if err != nil {
			callbackAlert(ctx, b, update, "Failed to load your balance. Please try again.")
			return
		}
		h.state.SetProfile(chatID, h.state.Generation(chatID), fetched)
		profile = fetched
	}

	// The control is hidden below the minimum, but a stale keyboard can
	// still trigger this path.
	if !profile.CanWithdraw() {
		callbackAlert(ctx, b, update, domain.ErrInsufficientBalance.Error())
		return
	}

	answerCallback(ctx, b, update)
	h.state.SetInput(chatID, state.InputState{Mode: state.InputWithdrawAmount})
	tg.SendText(ctx, b, chatID, fmt.Sprintf(
		"💸 Enter the amount to withdraw (minimum %s, available %s):",
		view.Amount(domain.MinWithdrawal), view.Amount(profile.AvailableBalance),
	))
}

func (h *Handler) handleWithdrawalAmountText(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	amount, err := domain.ParseWithdrawalAmount(text)
	if err != nil {
		tg.SendText(ctx, b, chatID, "❌ "+err.Error())
		return
	}

	// Amount rules are checked here so the user can correct them before the
	// rest of the form; the full rule set runs again before the request.
	available := h.availableBalance(chatID)
	if amount.LessThan(domain.MinWithdrawal) {
		tg.SendText(ctx, b, chatID, "❌ "+domain.ErrBelowMinimum.Error())
		return
	}
	if amount.GreaterThan(available) {
		tg.SendText(ctx, b, chatID, "❌ "+domain.ErrInsufficientBalance.Error())
		return
	}

	h.state.SetInput(chatID, state.InputState{Mode: state.InputWithdrawMethod, Amount: amount})
	if err := tg.SendFragment(ctx, b, chatID, view.MethodPicker()); err != nil {
		slog.Error("render method picker", "error", err, "chat_id", chatID)
	}
}

func (h *Handler) handleWithdrawalMethod(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	answerCallback(ctx, b, update)

	chatID := middleware.ChatID(update)
	input := h.state.Input(chatID)
	if input.Mode != state.InputWithdrawMethod {
		return
	}

	method := domain.WithdrawalMethod(strings.TrimPrefix(update.CallbackQuery.Data, "wd_method_"))
	if !method.Valid() {
		tg.SendText(ctx, b, chatID, "❌ "+domain.ErrUnknownMethod.Error())
		return
	}

	input.Mode = state.InputWithdrawDetails
	input.Method = method
	h.state.SetInput(chatID, input)
	tg.SendText(ctx, b, chatID, fmt.Sprintf("Enter your %s account details:", method.DisplayName()))
}

func (h *Handler) handleWithdrawalDetailsText(ctx context.Context, b *bot.Bot, sess *domain.Session, chatID int64, text string) {
	input := h.state.Input(chatID)
	accountDetails := strings.TrimSpace(text)

	// Full local rule set; nothing is sent unless every rule passes.
	if err := domain.ValidateWithdrawal(input.Amount, h.availableBalance(chatID), input.Method, accountDetails); err != nil {
		if errors.Is(err, domain.ErrMissingAccountDetails) {
			tg.SendText(ctx, b, chatID, "❌ "+err.Error())
			return
		}
		// Balance or amount rules failed late; restart the form.
		h.state.ClearInput(chatID)
		tg.SendText(ctx, b, chatID, "❌ "+err.Error())
		return
	}

	if err := h.gateway.RequestWithdrawal(ctx, sess, input.Amount, input.Method, accountDetails); err != nil {
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) {
			tg.SendText(ctx, b, chatID, fmt.Sprintf("❌ Withdrawal request failed: %s", apiErr.Message))
		} else {
			slog.Error("request withdrawal", "error", err, "chat_id", chatID)
			tg.SendText(ctx, b, chatID, "❌ Withdrawal request failed. Please try again.")
		}
		return
	}

	h.state.ClearInput(chatID)
	h.evLog.LogWithdrawalRequest(sess.Email, view.Amount(input.Amount), input.Method.DisplayName())

	tg.SendText(ctx, b, chatID,
		"✅ Withdrawal Requested\n\nYour withdrawal request has been submitted for approval.")

	// Refresh the slices this action affects, then re-render the screen.
	h.refreshProfile(ctx, sess, chatID)
	h.showView(ctx, b, sess, chatID, "withdraw")
}

func (h *Handler) handleWithdrawalCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	answerCallback(ctx, b, update)

	chatID := middleware.ChatID(update)
	h.state.ClearInput(chatID)
	tg.SendText(ctx, b, chatID, "Withdrawal cancelled.")
}

// availableBalance is the last known available balance, zero when no profile
// has loaded yet.
func (h *Handler) availableBalance(chatID int64) decimal.Decimal {
	if p := h.state.Profile(chatID); p != nil {
		return p.AvailableBalance
	}
	return decimal.Zero
}
