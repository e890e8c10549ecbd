package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized maps HTTP 401/403. The caller is responsible for
	// clearing the session and returning to the login prompt; this package
	// never touches session state itself.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable maps transport-level failures where no response was
	// received. The session is left untouched; the action can be retried.
	ErrUnavailable = errors.New("server unavailable")
)

// Error is a non-2xx response carrying the server-provided message from an
// {"error": ...} body. Message falls back to a generic text when the body
// is absent or unparseable.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}
