package handler

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/earnbase/earnbot/internal/middleware"
	"github.com/earnbase/earnbot/internal/state"
	tg "github.com/earnbase/earnbot/internal/telegram"
	"github.com/earnbase/earnbot/internal/view"
)

// HandleText routes free-form messages to the step of whichever multi-step
// flow the chat is in. Registered as the bot's default handler, so it must
// ignore anything the command handlers already consumed.
func (h *Handler) HandleText(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Chat.Type != "private" {
		return
	}

	text := update.Message.Text
	chatID := update.Message.Chat.ID
	input := h.state.Input(chatID)

	// Unmatched commands are dropped, except while a password is expected:
	// a credential may legitimately begin with a slash.
	if strings.HasPrefix(text, "/") && !passwordMode(input.Mode) {
		return
	}

	// Sign-in steps run without a session by definition.
	switch input.Mode {
	case state.InputSignInEmail:
		h.handleSignInEmail(ctx, b, chatID, text)
		return
	case state.InputSignInPassword:
		h.handleSignInPassword(ctx, b, update, chatID, text)
		return
	}

	sess := middleware.GetSession(ctx)
	if sess == nil {
		h.beginSignIn(ctx, b, chatID)
		return
	}

	switch input.Mode {
	case state.InputSubmission:
		h.handleSubmissionText(ctx, b, sess, chatID, text)
	case state.InputWithdrawAmount:
		h.handleWithdrawalAmountText(ctx, b, chatID, text)
	case state.InputWithdrawMethod:
		tg.SendText(ctx, b, chatID, "Please pick a payment method using the buttons above.")
	case state.InputWithdrawDetails:
		h.handleWithdrawalDetailsText(ctx, b, sess, chatID, text)
	case state.InputReportSubject:
		h.handleReportSubjectText(ctx, b, chatID, text)
	case state.InputReportDescription:
		h.handleReportDescriptionText(ctx, b, sess, chatID, text)
	case state.InputNewPassword:
		h.handleNewPasswordText(ctx, b, update, chatID, text)
	case state.InputConfirmPassword:
		h.handleConfirmPasswordText(ctx, b, update, sess, chatID, text)
	default:
		// Nothing pending; point the user back at the screens.
		tg.SendFragment(ctx, b, chatID, view.Join(
			view.Fragment{Text: "Use the buttons below to navigate:"},
			view.Nav(),
		))
	}
}

func passwordMode(m state.InputMode) bool {
	switch m {
	case state.InputSignInPassword, state.InputNewPassword, state.InputConfirmPassword:
		return true
	}
	return false
}
