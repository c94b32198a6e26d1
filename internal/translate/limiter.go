package translate

import (
	"context"
	"time"
)

// rateLimiter paces outbound backend calls. A nil limiter never blocks.
type rateLimiter struct {
	tokens <-chan time.Time
}

// newRateLimiter builds a limiter allowing rps calls per second.
// Non-positive rps disables pacing.
func newRateLimiter(rps float64) *rateLimiter {
	if rps <= 0 {
		return nil
	}
	interval := time.Duration(float64(time.Second) / rps)
	if interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(interval)
	tokens := make(chan time.Time, 1)
	tokens <- time.Now()

	go func() {
		for t := range ticker.C {
			select {
			case tokens <- t:
			default:
			}
		}
	}()

	return &rateLimiter{tokens: tokens}
}

// Wait blocks until a call slot is available or ctx is done.
func (r *rateLimiter) Wait(ctx context.Context) error {
	if r == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-r.tokens:
		return nil
	}
}
