package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Register registers all command and callback handlers on the bot instance.
func (h *Handler) Register() {
	// Commands
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/login", bot.MatchTypePrefix, h.handleLogin)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/logout", bot.MatchTypePrefix, h.handleLogout)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/tasks", bot.MatchTypePrefix, h.commandView("tasks"))
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/withdraw", bot.MatchTypePrefix, h.commandView("withdraw"))
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/history", bot.MatchTypePrefix, h.commandView("history"))
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/bonus", bot.MatchTypePrefix, h.commandView("bonus"))
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/profile", bot.MatchTypePrefix, h.commandView("profile"))
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/report", bot.MatchTypePrefix, h.commandView("report"))

	// View switching
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "view_", bot.MatchTypePrefix, h.handleViewSwitch)

	// Task callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "task_", bot.MatchTypePrefix, h.handleTaskDetail)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "submit_", bot.MatchTypePrefix, h.handleBeginSubmission)

	// Withdrawal callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "wd_new", bot.MatchTypeExact, h.handleBeginWithdrawal)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "wd_method_", bot.MatchTypePrefix, h.handleWithdrawalMethod)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "wd_cancel", bot.MatchTypeExact, h.handleWithdrawalCancel)

	// Bonus callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "claim_bonus", bot.MatchTypeExact, h.handleClaimBonus)

	// Profile callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "change_password", bot.MatchTypeExact, h.handleBeginPasswordChange)

	// Report callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "report_new", bot.MatchTypeExact, h.handleBeginReport)
}

// answerCallback acknowledges a callback query so the client stops showing a
// progress spinner.
func answerCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery != nil {
		b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
			CallbackQueryID: update.CallbackQuery.ID,
		})
	}
}

// callbackAlert shows a blocking alert on the user's client, used for
// failures of mutating actions.
func callbackAlert(ctx context.Context, b *bot.Bot, update *models.Update, text string) {
	if update.CallbackQuery != nil {
		b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
			CallbackQueryID: update.CallbackQuery.ID,
			Text:            text,
			ShowAlert:       true,
		})
	}
}
