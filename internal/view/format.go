package view

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/earnbase/earnbot/internal/domain"
)

// Amount renders a currency amount with the fixed prefix and exactly two
// decimal digits.
func Amount(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// SignedAmount renders a ledger amount with an explicit sign.
func SignedAmount(d decimal.Decimal) string {
	if d.Sign() >= 0 {
		return "+" + Amount(d)
	}
	return "-" + Amount(d.Abs())
}

// TimeRemaining renders a countdown in whole hours and minutes, e.g. 3670
// seconds as "1h 1m".
func TimeRemaining(seconds int64) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// Date renders a record timestamp.
func Date(t time.Time) string {
	return t.Format("02 Jan 2006")
}

func withdrawalBadge(status domain.WithdrawalStatus) string {
	switch status {
	case domain.WithdrawalPending:
		return "⏳"
	case domain.WithdrawalApproved:
		return "✅"
	case domain.WithdrawalRejected:
		return "❌"
	case domain.WithdrawalPaid:
		return "💸"
	default:
		return "▫️"
	}
}
