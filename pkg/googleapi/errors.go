package googleapi

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated is returned before any network call when the token
// source has no access token. The user must sign in first.
var ErrUnauthenticated = errors.New("no authentication token available")

// AuthExpiredError signals that Google rejected the access token. It is kept
// distinct from StatusError because the only remedy is re-authentication,
// not a retry.
type AuthExpiredError struct{}

func (e *AuthExpiredError) Error() string {
	return "google authentication expired"
}

// StatusError carries a non-2xx, non-401 response for diagnostics.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("google api error: %d - %s", e.StatusCode, e.Body)
}

// IsAuthError reports whether err means the caller must (re-)authenticate.
func IsAuthError(err error) bool {
	var expired *AuthExpiredError
	return errors.Is(err, ErrUnauthenticated) || errors.As(err, &expired)
}
