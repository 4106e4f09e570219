package cartola

import (
	"errors"
	"fmt"
)

const (
	msgCredentialsMissing  = "credentials missing"
	msgRequiresAuth        = "this operation requires authentication"
	msgInvalidMerge        = "invalid team or partials"
	msgPartialsClosed      = "partial scores are only available while the market is closed"
	msgHighlightsOpen      = "post-round highlights are only available while the market is open"
	msgTeamQueryMissing    = "a team id, name or slug is required"
	msgLeagueQueryMissing  = "a league name or slug is required"
	msgOverloaded          = "cartola servers are overloaded"
	msgAuthenticationError = "authentication failed"
)

// APIError is a fatal error. It carries a message that can be shown to the user
// as is: either a message reported by the service or a rejected precondition.
// APIErrors are never retried.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func newAPIError(format string, args ...any) *APIError {
	return &APIError{Message: fmt.Sprintf(format, args...)}
}

// GameOverError is returned when the service reports the season is over. It
// is also an APIError.
type GameOverError struct {
	APIError
}

func (e *GameOverError) Unwrap() error {
	return &e.APIError
}

// OverloadError is returned once every attempt failed with a transient fault:
// a body that is not JSON, or a transport error.
type OverloadError struct {
	Attempts int
	Err      error // the cause of the last failed attempt
}

func (e *OverloadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s after %d attempt(s)", msgOverloaded, e.Attempts)
	}
	return fmt.Sprintf("%s after %d attempt(s): %v", msgOverloaded, e.Attempts, e.Err)
}

func (e *OverloadError) Unwrap() error {
	return e.Err
}

// IsAPIError reports whether err is, or wraps, an *APIError (this includes
// *GameOverError).
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

func IsGameOver(err error) bool {
	var gameOver *GameOverError
	return errors.As(err, &gameOver)
}

func IsOverload(err error) bool {
	var overload *OverloadError
	return errors.As(err, &overload)
}
