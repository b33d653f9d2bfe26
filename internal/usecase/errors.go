package usecase

import (
	"errors"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrConfigurationMissing  = errors.New("upstream credentials not configured")
	ErrUpstreamFailure       = errors.New("upstream failure")
)

// isDependencyUnavailable reports whether an upstream client marked err as
// the dependency being unreachable, such as an open circuit breaker.
func isDependencyUnavailable(err error) bool {
	return crerr.Is(err, ErrDependencyUnavailable)
}
