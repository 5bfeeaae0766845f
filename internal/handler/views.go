package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/earnbase/earnbot/internal/domain"
	"github.com/earnbase/earnbot/internal/middleware"
	tg "github.com/earnbase/earnbot/internal/telegram"
	"github.com/earnbase/earnbot/internal/view"
)

// viewNames lists the mutually-exclusive screens. "tasks" is the default.
var viewNames = map[string]bool{
	"tasks":    true,
	"withdraw": true,
	"history":  true,
	"bonus":    true,
	"profile":  true,
	"report":   true,
}

func (h *Handler) commandView(name string) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if update.Message == nil {
			return
		}
		chatID := update.Message.Chat.ID
		sess := h.requireSession(ctx, b, chatID)
		if sess == nil {
			return
		}
		h.showView(ctx, b, sess, chatID, name)
	}
}

func (h *Handler) handleViewSwitch(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	answerCallback(ctx, b, update)

	chatID := middleware.ChatID(update)
	sess := h.requireSession(ctx, b, chatID)
	if sess == nil {
		return
	}

	name := strings.TrimPrefix(update.CallbackQuery.Data, "view_")
	if !viewNames[name] {
		return
	}
	h.showView(ctx, b, sess, chatID, name)
}

// requireSession resolves the signed-in session or prompts sign-in.
func (h *Handler) requireSession(ctx context.Context, b *bot.Bot, chatID int64) *domain.Session {
	if sess := middleware.GetSession(ctx); sess != nil {
		return sess
	}
	h.beginSignIn(ctx, b, chatID)
	return nil
}

// showView switches the chat to the named view: it advances the view
// generation, runs the view's load operations, and renders exactly one
// screen. A load that loses the generation race renders nothing; prior state
// slices survive failed loads while the screen shows an inline error.
func (h *Handler) showView(ctx context.Context, b *bot.Bot, sess *domain.Session, chatID int64, name string) {
	gen := h.state.Activate(chatID)

	var screen view.Fragment
	switch name {
	case "tasks":
		screen = h.loadTasksView(ctx, sess, chatID, gen)
	case "withdraw":
		screen = h.loadWithdrawView(ctx, sess, chatID, gen)
	case "history":
		screen = h.loadHistoryView(ctx, sess, chatID)
	case "bonus":
		screen = h.loadBonusView(ctx, sess, chatID)
	case "profile":
		screen = h.loadProfileView(ctx, sess, chatID, gen)
	case "report":
		screen = view.Report()
	default:
		return
	}

	// The user may have moved on while a load was in flight.
	if h.state.Generation(chatID) != gen {
		return
	}

	if err := tg.SendFragment(ctx, b, chatID, view.Join(screen, view.Nav())); err != nil {
		slog.Error("render view", "error", err, "view", name, "chat_id", chatID)
	}
}

// loadError records a failed load locally and in the admin channel.
func (h *Handler) loadError(op string, err error, chatID int64) {
	slog.Error(op, "error", err, "chat_id", chatID)
	h.evLog.LogError(err, op)
}

func (h *Handler) loadTasksView(ctx context.Context, sess *domain.Session, chatID int64, gen uint64) view.Fragment {
	tasks, tasksErr := h.gateway.Tasks(ctx, sess)
	if tasksErr != nil {
		h.loadError("load tasks", tasksErr, chatID)
	} else if !h.state.SetTasks(chatID, gen, tasks) {
		return view.Fragment{}
	}

	earners, lbErr := h.gateway.TopEarners(ctx, sess)
	if lbErr != nil {
		h.loadError("load top earners", lbErr, chatID)
	} else if !h.state.SetLeaderboard(chatID, gen, earners) {
		return view.Fragment{}
	}

	fragments := []view.Fragment{}
	if p := h.state.Profile(chatID); p != nil {
		fragments = append(fragments, view.Fragment{Text: view.Balances(p)})
	}
	fragments = append(fragments,
		view.Tasks(tasks, tasksErr != nil),
		view.TopEarners(earners, lbErr != nil),
	)
	return view.Join(fragments...)
}

func (h *Handler) loadWithdrawView(ctx context.Context, sess *domain.Session, chatID int64, gen uint64) view.Fragment {
	history, histErr := h.gateway.WithdrawalHistory(ctx, sess)
	if histErr != nil {
		h.loadError("load withdrawal history", histErr, chatID)
	}

	profile := h.state.Profile(chatID)
	if profile == nil {
		fetched, err := h.gateway.Dashboard(ctx, sess)
		if err != nil {
			h.loadError("load profile", err, chatID)
		} else if !h.state.SetProfile(chatID, gen, fetched) {
			return view.Fragment{}
		} else {
			profile = fetched
		}
	}

	return view.Withdraw(profile, history, histErr != nil)
}

func (h *Handler) loadHistoryView(ctx context.Context, sess *domain.Session, chatID int64) view.Fragment {
	history, err := h.gateway.PaymentHistory(ctx, sess)
	if err != nil {
		h.loadError("load payment history", err, chatID)
	}
	return view.PaymentHistory(history, err != nil)
}

func (h *Handler) loadBonusView(ctx context.Context, sess *domain.Session, chatID int64) view.Fragment {
	status, err := h.gateway.BonusStatus(ctx, sess)
	if err != nil {
		h.loadError("load bonus status", err, chatID)
	}
	return view.Bonus(status, err != nil)
}

func (h *Handler) loadProfileView(ctx context.Context, sess *domain.Session, chatID int64, gen uint64) view.Fragment {
	profile, err := h.gateway.Dashboard(ctx, sess)
	if err != nil {
		h.loadError("load profile", err, chatID)
		return view.Profile(sess.Email, nil, true)
	}
	if !h.state.SetProfile(chatID, gen, profile) {
		return view.Fragment{}
	}
	return view.Profile(sess.Email, profile, false)
}
