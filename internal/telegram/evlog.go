package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"

	"github.com/earnbase/earnbot/internal/config"
)

// EventLogger mirrors notable dashboard events into an admin Telegram
// channel, routed by topic. Disabled when no chat is configured.
type EventLogger struct {
	bot *bot.Bot
	cfg *config.Config
}

func NewEventLogger(b *bot.Bot, cfg *config.Config) *EventLogger {
	return &EventLogger{bot: b, cfg: cfg}
}

type EventType string

const (
	EventError      EventType = "error"
	EventSignIn     EventType = "signIn"
	EventWithdrawal EventType = "withdrawal"
	EventBonus      EventType = "bonus"
	EventReport     EventType = "report"
)

func (l *EventLogger) Log(eventType EventType, message string) {
	if l.cfg.LogTelegramChatID == 0 {
		return
	}

	topicID := l.topicID(eventType)
	if topicID == 0 {
		return
	}

	if len([]rune(message)) > config.MaxTelegramMessageLen {
		message = string([]rune(message)[:config.MaxTelegramMessageLen-20]) + "\n\n... (truncated)"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := l.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:          l.cfg.LogTelegramChatID,
		Text:            message,
		ParseMode:       "Markdown",
		MessageThreadID: topicID,
	})
	if err != nil {
		slog.Error("failed to send telegram log", "type", eventType, "error", err)
	}
}

func (l *EventLogger) LogError(err error, context string) {
	msg := fmt.Sprintf("❌ *Error*\n\n*Context:* %s\n*Error:* `%s`\n*Time:* %s",
		context, err.Error(), time.Now().Format("2006-01-02 15:04:05"))
	l.Log(EventError, msg)
}

func (l *EventLogger) LogSignIn(chatID int64, email string) {
	msg := fmt.Sprintf("👤 *Sign-in*\n\n*Chat:* `%d`\n*Email:* %s", chatID, email)
	l.Log(EventSignIn, msg)
}

func (l *EventLogger) LogWithdrawalRequest(email string, amount string, method string) {
	msg := fmt.Sprintf("💸 *Withdrawal Requested*\n\n*User:* %s\n*Amount:* %s\n*Method:* %s",
		email, amount, method)
	l.Log(EventWithdrawal, msg)
}

func (l *EventLogger) LogBonusClaim(email string) {
	msg := fmt.Sprintf("🎁 *Bonus Claimed*\n\n*User:* %s", email)
	l.Log(EventBonus, msg)
}

func (l *EventLogger) LogReport(email, subject string) {
	msg := fmt.Sprintf("🚩 *Report Submitted*\n\n*User:* %s\n*Subject:* %s", email, subject)
	l.Log(EventReport, msg)
}

func (l *EventLogger) topicID(eventType EventType) int {
	switch eventType {
	case EventError:
		return l.cfg.LogTopicError
	case EventSignIn:
		return l.cfg.LogTopicSignIn
	case EventWithdrawal:
		return l.cfg.LogTopicWithdrawal
	case EventBonus:
		return l.cfg.LogTopicBonus
	case EventReport:
		return l.cfg.LogTopicReport
	default:
		return 0
	}
}
