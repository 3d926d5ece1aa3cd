// Package ratelimit builds the limiters that space calls to remote services.
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"
)

// Every returns a limiter granting one call per interval, the first one
// immediately. A non-positive interval never waits.
func Every(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}
