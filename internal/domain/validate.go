package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ValidateSubmission checks a task submission before it is sent. Whitespace
// does not count as content.
func ValidateSubmission(submission string) error {
	if strings.TrimSpace(submission) == "" {
		return ErrEmptySubmission
	}
	return nil
}

// ParseWithdrawalAmount parses user input into a currency amount. Rejects
// anything that is not a finite positive number.
func ParseWithdrawalAmount(input string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(input))
	if err != nil || amount.Sign() <= 0 {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

// ValidateWithdrawal applies every local withdrawal rule, in order, against
// the last known available balance. On nil the request may be sent; exactly
// one network call follows.
func ValidateWithdrawal(amount decimal.Decimal, available decimal.Decimal, method WithdrawalMethod, accountDetails string) error {
	if amount.LessThan(MinWithdrawal) {
		return ErrBelowMinimum
	}
	if amount.GreaterThan(available) {
		return ErrInsufficientBalance
	}
	if !method.Valid() {
		return ErrUnknownMethod
	}
	if strings.TrimSpace(accountDetails) == "" {
		return ErrMissingAccountDetails
	}
	return nil
}

// ValidateReport requires both a subject and a description.
func ValidateReport(subject, description string) error {
	if strings.TrimSpace(subject) == "" || strings.TrimSpace(description) == "" {
		return ErrEmptyReport
	}
	return nil
}

// ValidatePasswordChange requires both entries non-empty and matching. The
// identity provider enforces its own policy on top.
func ValidatePasswordChange(newPassword, confirm string) error {
	if newPassword == "" || confirm == "" {
		return ErrEmptyPassword
	}
	if newPassword != confirm {
		return ErrPasswordMismatch
	}
	return nil
}
