package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSubmission(t *testing.T) {
	assert.NoError(t, ValidateSubmission("done, see screenshot"))
	assert.ErrorIs(t, ValidateSubmission(""), ErrEmptySubmission)
	assert.ErrorIs(t, ValidateSubmission("   \n\t"), ErrEmptySubmission)
}

func TestParseWithdrawalAmount(t *testing.T) {
	amount, err := ParseWithdrawalAmount(" 12.50 ")
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("12.50")))

	for _, input := range []string{"", "abc", "12,50", "0", "-3"} {
		_, err := ParseWithdrawalAmount(input)
		assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", input)
	}
}

func TestValidateWithdrawal(t *testing.T) {
	available := decimal.RequireFromString("10.00")

	tests := []struct {
		name    string
		amount  string
		method  WithdrawalMethod
		details string
		wantErr error
	}{
		{"valid", "5.00", MethodBkash, "01711111111", nil},
		{"exactly available", "10.00", MethodNagad, "01711111111", nil},
		{"below minimum", "4.99", MethodBkash, "01711111111", ErrBelowMinimum},
		{"above available", "10.01", MethodBkash, "01711111111", ErrInsufficientBalance},
		{"unknown method", "5.00", WithdrawalMethod("paypal"), "01711111111", ErrUnknownMethod},
		{"empty details", "5.00", MethodUSDT, "", ErrMissingAccountDetails},
		{"whitespace details", "5.00", MethodUSDT, "   ", ErrMissingAccountDetails},
		// The minimum rule wins when several rules fail at once.
		{"below minimum and empty details", "1.00", MethodBkash, "", ErrBelowMinimum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWithdrawal(decimal.RequireFromString(tt.amount), available, tt.method, tt.details)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateReport(t *testing.T) {
	assert.NoError(t, ValidateReport("Payment missing", "My task was approved but not credited."))
	assert.ErrorIs(t, ValidateReport("", "description"), ErrEmptyReport)
	assert.ErrorIs(t, ValidateReport("subject", ""), ErrEmptyReport)
	assert.ErrorIs(t, ValidateReport("  ", "  "), ErrEmptyReport)
}

func TestValidatePasswordChange(t *testing.T) {
	assert.NoError(t, ValidatePasswordChange("hunter22", "hunter22"))
	assert.ErrorIs(t, ValidatePasswordChange("", ""), ErrEmptyPassword)
	assert.ErrorIs(t, ValidatePasswordChange("hunter22", ""), ErrEmptyPassword)
	assert.ErrorIs(t, ValidatePasswordChange("hunter22", "hunter23"), ErrPasswordMismatch)
}

func TestWithdrawalMethod(t *testing.T) {
	assert.True(t, MethodBkash.Valid())
	assert.False(t, WithdrawalMethod("venmo").Valid())
	assert.Equal(t, "Binance USDT", MethodUSDT.DisplayName())
	assert.Equal(t, "venmo", WithdrawalMethod("venmo").DisplayName())
}

func TestCanWithdraw(t *testing.T) {
	p := &UserProfile{AvailableBalance: decimal.RequireFromString("5.00")}
	assert.True(t, p.CanWithdraw())

	p.AvailableBalance = decimal.RequireFromString("4.99")
	assert.False(t, p.CanWithdraw())
}

func TestPaymentHistoryRecord(t *testing.T) {
	credit := PaymentHistoryRecord{Amount: decimal.RequireFromString("0.02")}
	assert.True(t, credit.Credit())
	assert.Equal(t, "completed", credit.StatusOrDefault())

	debit := PaymentHistoryRecord{Amount: decimal.RequireFromString("-5.00"), Status: "pending"}
	assert.False(t, debit.Credit())
	assert.Equal(t, "pending", debit.StatusOrDefault())
}
