package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	BotToken    string `env:"BOT_TOKEN,required"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Backend REST API consumed by the dashboard
	APIBaseURL string `env:"API_BASE_URL,required"`

	// Identity provider issuing short-lived bearer tokens
	AuthBaseURL string `env:"AUTH_BASE_URL,required"`

	// Admin
	AdminIDs []int64 `env:"ADMIN_IDS" envSeparator:","`

	// Bot behavior
	DropPendingUpdates bool `env:"BOT_DROP_PENDING_UPDATES" envDefault:"false"`

	// Telegram logging
	LogTelegramChatID  int64 `env:"LOG_TELEGRAM_CHAT_ID"`
	LogTopicError      int   `env:"LOG_TOPIC_ERROR"`
	LogTopicSignIn     int   `env:"LOG_TOPIC_SIGNIN"`
	LogTopicWithdrawal int   `env:"LOG_TOPIC_WITHDRAWAL"`
	LogTopicBonus      int   `env:"LOG_TOPIC_BONUS"`
	LogTopicReport     int   `env:"LOG_TOPIC_REPORT"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsAdmin(telegramID int64) bool {
	for _, id := range c.AdminIDs {
		if id == telegramID {
			return true
		}
	}
	return false
}
