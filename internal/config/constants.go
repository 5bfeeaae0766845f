package config

import "time"

const (
	// Backend/identity request timeout
	RequestTimeout = 30 * time.Second

	// Daily bonus credited on claim (USD)
	BonusAmount = 0.02

	// Report success indicator lifetime
	ReportSuccessClear = 3 * time.Second

	// Telegram limits
	MaxTelegramMessageLen = 4096

	// Rate limits (per minute)
	RateLimitPerMinute = 20

	// Stale rate-limit window cleanup interval
	StaleWindowCleanup = 60 * time.Second
)
