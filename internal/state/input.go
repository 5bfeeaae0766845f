package state

import (
	"github.com/shopspring/decimal"

	"github.com/earnbase/earnbot/internal/domain"
)

// InputMode names the text input the chat is currently expected to provide.
type InputMode int

const (
	InputNone InputMode = iota

	// Sign-in flow
	InputSignInEmail
	InputSignInPassword

	// Task submission
	InputSubmission

	// Withdrawal form
	InputWithdrawAmount
	InputWithdrawMethod
	InputWithdrawDetails

	// Report form
	InputReportSubject
	InputReportDescription

	// Password change
	InputNewPassword
	InputConfirmPassword
)

// InputState carries the fields collected so far in a multi-step flow.
type InputState struct {
	Mode InputMode

	Email    string
	TaskID   string
	Amount   decimal.Decimal
	Method   domain.WithdrawalMethod
	Subject  string
	Password string
}

// SetInput replaces the chat's pending input state.
func (s *Store) SetInput(chatID int64, input InputState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat(chatID).input = input
}

// Input returns the chat's pending input state.
func (s *Store) Input(chatID int64) InputState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chat(chatID).input
}

// ClearInput abandons the pending input flow.
func (s *Store) ClearInput(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat(chatID).input = InputState{}
}
