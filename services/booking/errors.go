package booking

import (
	"errors"
	"strings"

	"driveline/backend"
)

// conflictMarker is the known substring the backend places in the error body
// when an instructor already has a session at the requested time.
const conflictMarker = "already has a class"

var (
	// ErrNotAuthenticated means no logged-in user was found; callers should
	// redirect to login. No network calls are made in this case.
	ErrNotAuthenticated = errors.New("login required")

	// ErrWizardNotFound means the draft has expired or never existed.
	ErrWizardNotFound = errors.New("booking wizard not found or expired")

	// ErrDraftIncomplete means a confirm was attempted with required fields
	// still missing.
	ErrDraftIncomplete = errors.New("booking draft is incomplete")
)

// ConflictError is a schedule conflict rejected by the backend.
type ConflictError struct {
	Detail string
}

func (e *ConflictError) Error() string {
	return "the instructor already has a class at the selected time"
}

// isScheduleConflict reports whether err is a backend rejection carrying the
// known conflict marker.
func isScheduleConflict(err error) bool {
	var apiErr *backend.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return strings.Contains(apiErr.Body, conflictMarker)
}
