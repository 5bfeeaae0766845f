package domain

import "errors"

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrSessionNotFound = errors.New("session not found")
	ErrTaskNotFound    = errors.New("task not found")

	// Local validation errors; each maps to one rejected rule and is raised
	// before any network call.
	ErrEmptySubmission       = errors.New("please complete the task submission")
	ErrInvalidAmount         = errors.New("enter a valid amount")
	ErrBelowMinimum          = errors.New("minimum withdrawal amount is $5.00")
	ErrInsufficientBalance   = errors.New("insufficient available balance")
	ErrUnknownMethod         = errors.New("unknown payment method")
	ErrMissingAccountDetails = errors.New("please enter your account details")
	ErrEmptyReport           = errors.New("please fill in both subject and description")
	ErrEmptyPassword         = errors.New("please enter and confirm your new password")
	ErrPasswordMismatch      = errors.New("passwords do not match")
)
