package telegram

import (
	"errors"
	"fmt"
)

var (
	// ErrNothingToSend is returned for an empty record set, before any request is made.
	ErrNothingToSend = errors.New("nothing to send")
	ErrMissingConfig = errors.New("telegram bot token and chat id are required")
)

// APIError is a non-2xx answer from the Bot API.
type APIError struct {
	Method      string
	StatusCode  int
	Description string
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("telegram %s: status %d", e.Method, e.StatusCode)
	}
	return fmt.Sprintf("telegram %s: status %d: %s", e.Method, e.StatusCode, e.Description)
}
