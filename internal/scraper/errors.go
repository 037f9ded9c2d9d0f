package scraper

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownTarget = errors.New("unknown target")
	ErrInvalidTarget = errors.New("invalid target")
)

// SessionError means the browser session could not be opened.
type SessionError struct {
	City string
	Err  error
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("open session for %s: %v", e.City, e.Err)
}

func (e *SessionError) Unwrap() error { return e.Err }

type NavigationError struct {
	City string
	URL  string
	Err  error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigate to %s for %s: %v", e.URL, e.City, e.Err)
}

func (e *NavigationError) Unwrap() error { return e.Err }

type SearchError struct {
	City  string
	Query string
	Err   error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("search %q for %s: %v", e.Query, e.City, e.Err)
}

func (e *SearchError) Unwrap() error { return e.Err }

// ExtractionError covers snapshot failures and panics raised while a session is open.
type ExtractionError struct {
	City string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.City, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Kind names the stage an error came from, for log lines.
func Kind(err error) string {
	var (
		sessionErr    *SessionError
		navigationErr *NavigationError
		searchErr     *SearchError
		extractionErr *ExtractionError
	)
	switch {
	case errors.As(err, &sessionErr):
		return "session"
	case errors.As(err, &navigationErr):
		return "navigation"
	case errors.As(err, &searchErr):
		return "search"
	case errors.As(err, &extractionErr):
		return "extraction"
	default:
		return "unknown"
	}
}
