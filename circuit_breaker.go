package adaptordata

import (
	"time"

	"github.com/sony/gobreaker/v2"
)

// NewCircuitBreakerConfig returns a factory creating one circuit breaker
// per source. Repeated failures against a source, including
// repository-unavailable signals and adaptor processes that fail to
// start, trip the breaker so callers fail fast instead of re-spawning a
// dead repository's adaptor.
//
// Sessions return heterogeneous results (a record batch or a single
// document), so the breaker carries them as any.
func NewCircuitBreakerConfig(maxRequests uint32, interval, timeout time.Duration) func(sourceName string) *gobreaker.CircuitBreaker[any] {
	return func(sourceName string) *gobreaker.CircuitBreaker[any] {
		settings := gobreaker.Settings{
			Name:        sourceName,
			MaxRequests: maxRequests,
			Interval:    interval,
			Timeout:     timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
				return counts.Requests >= 3 && failureRatio >= 0.6
			},
		}
		return gobreaker.NewCircuitBreaker[any](settings)
	}
}
