package domain

import "github.com/shopspring/decimal"

// MinWithdrawal is the smallest amount the backend accepts for a withdrawal
// request. Enforced locally before any network call.
var MinWithdrawal = decimal.RequireFromString("5")

// UserProfile is the authoritative account snapshot returned by the backend.
// It is always replaced wholesale, never merged.
type UserProfile struct {
	Username         string          `json:"username"`
	Balance          decimal.Decimal `json:"balance"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
	Bonus            decimal.Decimal `json:"bonus"`
}

// CanWithdraw reports whether the available balance covers the minimum
// withdrawal amount.
func (p *UserProfile) CanWithdraw() bool {
	return p.AvailableBalance.GreaterThanOrEqual(MinWithdrawal)
}
