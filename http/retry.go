package http

import (
	"context"
	"time"
)

// DefaultRetryDelays returns the backoff delays for download retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// retry calls fn until it succeeds, fails permanently, or every delay has
// been used. onRetry is called before each wait with the next attempt number.
func retry(ctx context.Context, delays []time.Duration, onRetry func(attempt int, err error), fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= len(delays); attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == len(delays) || permanent(err) {
			break
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		onRetry(attempt+2, err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return lastErr
}
