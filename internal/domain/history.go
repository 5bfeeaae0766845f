package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type WithdrawalMethod string

const (
	MethodBkash  WithdrawalMethod = "bkash"
	MethodNagad  WithdrawalMethod = "nagad"
	MethodRocket WithdrawalMethod = "rocket"
	MethodUSDT   WithdrawalMethod = "usdt"
)

// WithdrawalMethods lists the supported payout methods in display order.
var WithdrawalMethods = []WithdrawalMethod{MethodBkash, MethodNagad, MethodRocket, MethodUSDT}

// DisplayName returns the user-facing label for the method. Unknown methods
// render as-is, matching server-driven additions.
func (m WithdrawalMethod) DisplayName() string {
	switch m {
	case MethodBkash:
		return "Bkash"
	case MethodNagad:
		return "Nagad"
	case MethodRocket:
		return "Rocket"
	case MethodUSDT:
		return "Binance USDT"
	default:
		return string(m)
	}
}

// Valid reports whether the method is one of the supported payout methods.
func (m WithdrawalMethod) Valid() bool {
	for _, known := range WithdrawalMethods {
		if m == known {
			return true
		}
	}
	return false
}

type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalApproved WithdrawalStatus = "approved"
	WithdrawalRejected WithdrawalStatus = "rejected"
	WithdrawalPaid     WithdrawalStatus = "paid"
)

type WithdrawalRecord struct {
	Timestamp time.Time        `json:"timestamp"`
	Amount    decimal.Decimal  `json:"amount"`
	Method    WithdrawalMethod `json:"method"`
	Status    WithdrawalStatus `json:"status"`
}

// PaymentHistoryRecord is one ledger line. The amount sign encodes
// credit (positive) vs debit (negative).
type PaymentHistoryRecord struct {
	Timestamp   time.Time       `json:"timestamp"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
}

// StatusOrDefault returns the record status, defaulting to "completed" when
// the backend omits it.
func (r PaymentHistoryRecord) StatusOrDefault() string {
	if r.Status == "" {
		return "completed"
	}
	return r.Status
}

// Credit reports whether the record credits the account.
func (r PaymentHistoryRecord) Credit() bool {
	return r.Amount.Sign() >= 0
}
