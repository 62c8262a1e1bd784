package gateway

import (
	"errors"
	"fmt"
)

// Kind classifies a provider call failure. The breaker counts only
// provider-origin kinds (unavailable, provider error, timeout); auth and
// request-shape failures never trip it.
type Kind string

const (
	// KindProviderUnavailable means the breaker is open or the provider
	// could not be reached at the transport level.
	KindProviderUnavailable Kind = "provider_unavailable"

	// KindProviderError means the provider answered with a 5xx.
	KindProviderError Kind = "provider_error"

	// KindAuthRejected means the provider answered 401 or 403.
	KindAuthRejected Kind = "auth_rejected"

	// KindTimeout means the call exceeded its deadline.
	KindTimeout Kind = "timeout"

	// KindBadRequest means the provider rejected the request shape (4xx
	// other than auth).
	KindBadRequest Kind = "bad_request"
)

// Error is the classified failure surfaced by every gateway operation.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int

	// RetryAfterSeconds carries the remaining breaker cooldown when
	// Kind is KindProviderUnavailable and the breaker is open.
	RetryAfterSeconds int

	// Err is the underlying transport or decode error, if any.
	Err error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("provider %s (HTTP %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("provider %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the failure kind from err, or "" when err is not a
// gateway error.
func KindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return ""
}

// countsAgainstBreaker reports whether a failure of this kind advances the
// consecutive-failure counter. Only provider-origin faults do.
func countsAgainstBreaker(k Kind) bool {
	switch k {
	case KindProviderUnavailable, KindProviderError, KindTimeout:
		return true
	default:
		return false
	}
}

// classifyStatus maps a non-2xx provider status to a failure kind.
func classifyStatus(status int) Kind {
	switch {
	case status == 401 || status == 403:
		return KindAuthRejected
	case status >= 500:
		return KindProviderError
	default:
		return KindBadRequest
	}
}
