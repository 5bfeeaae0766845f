package domain

import "github.com/shopspring/decimal"

// Task is an available micro-task. Immutable once fetched; the task list is
// replaced wholesale on every fetch.
type Task struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Instruction string          `json:"instruction"`
	Reward      decimal.Decimal `json:"reward"`
}

// LeaderboardEntry is one row of the top-earners board. Rank is positional
// (index+1), not a stored field.
type LeaderboardEntry struct {
	Username    string          `json:"username"`
	TotalEarned decimal.Decimal `json:"total_earned"`
}

// BonusStatus reports eligibility for the periodic bonus. TimeRemaining is
// seconds until the next eligibility when CanClaim is false.
type BonusStatus struct {
	CanClaim      bool  `json:"can_claim"`
	TimeRemaining int64 `json:"time_remaining"`
}
