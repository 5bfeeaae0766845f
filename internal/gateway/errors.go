package gateway

import "fmt"

// APIError is a non-success backend response: the HTTP status plus the
// human-readable message from the body when one was provided. Callers decide
// how to surface it; the gateway never retries.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}
