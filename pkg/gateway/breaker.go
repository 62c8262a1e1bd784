package gateway

import (
	"log/slog"
	"sync"
	"time"

	"github.com/sony/gobreaker"
)

// providerBreaker gates every provider call behind a three-state circuit
// breaker. Only provider-origin faults advance the trip counter; while
// open, calls fail fast with the remaining cooldown attached.
type providerBreaker struct {
	cb       *gobreaker.CircuitBreaker
	cooldown time.Duration

	mu       sync.Mutex
	openedAt time.Time
}

func newProviderBreaker(failureThreshold int, cooldown time.Duration) *providerBreaker {
	b := &providerBreaker{cooldown: cooldown}

	b.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "provider",
		MaxRequests: 1, // single trial while half-open
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(failureThreshold)
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			// Auth and request-shape failures are the caller's problem,
			// not a provider outage.
			return !countsAgainstBreaker(KindOf(err))
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if to == gobreaker.StateOpen {
				b.mu.Lock()
				b.openedAt = time.Now()
				b.mu.Unlock()
			}
			slog.Warn("Provider breaker state change",
				"from", from.String(),
				"to", to.String())
		},
	})

	return b
}

// Execute runs fn behind the breaker. An open breaker (or a second caller
// during the half-open trial) yields KindProviderUnavailable with the
// remaining cooldown.
func (b *providerBreaker) Execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := b.cb.Execute(fn)
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return nil, &Error{
			Kind:              KindProviderUnavailable,
			Message:           "provider circuit open",
			RetryAfterSeconds: b.remainingCooldown(),
			Err:               err,
		}
	}
	return result, err
}

// State exposes the current breaker state for health reporting.
func (b *providerBreaker) State() string {
	return b.cb.State().String()
}

func (b *providerBreaker) remainingCooldown() int {
	b.mu.Lock()
	openedAt := b.openedAt
	b.mu.Unlock()

	if openedAt.IsZero() {
		return 0
	}
	remaining := b.cooldown - time.Since(openedAt)
	if remaining < 0 {
		return 0
	}
	// Round up so a freshly opened breaker reports the full cooldown.
	return int((remaining + time.Second - 1) / time.Second)
}
