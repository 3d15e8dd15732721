package api

import (
	"errors"
	"fmt"
)

// ErrInvalidDateRange is returned before any request is issued when a
// query's start date falls after its end date.
var ErrInvalidDateRange = errors.New("start date must not be after end date")

// SetupTokenError reports a setup token that could not be decoded into a
// claim URL.
type SetupTokenError struct {
	Msg   string
	Cause error
}

func (e *SetupTokenError) Error() string {
	return "invalid setup token: " + e.Msg
}

func (e *SetupTokenError) Unwrap() error { return e.Cause }

// APIError reports a failed bridge request: a non-200 status, or a 200
// response whose body could not be decoded. It keeps the request URL,
// status code and raw body so callers can render a useful diagnostic.
type APIError struct {
	URL        string
	StatusCode int
	Body       string
	Msg        string
}

func (e *APIError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s %s: %s", e.URL, statusText(e.StatusCode), e.Msg)
	}
	return fmt.Sprintf("%s returned status %d", e.URL, e.StatusCode)
}

func statusText(code int) string {
	if code == 0 {
		return "(no response)"
	}
	return fmt.Sprintf("(status %d)", code)
}
