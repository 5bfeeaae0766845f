package domain

import "time"

// Session binds a Telegram chat to a signed-in principal. The refresh token
// is exchanged for a fresh short-lived bearer on every backend call.
type Session struct {
	ChatID       int64
	Email        string
	RefreshToken string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
