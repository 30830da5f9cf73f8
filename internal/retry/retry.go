// Package retry provides the shared retry policy applied to external calls.
package retry

import (
	"context"
	"fmt"
	"time"
)

// BackoffFunc returns the delay to wait after a failed attempt. The attempt
// index starts at 0 for the first failure.
type BackoffFunc func(attempt int) time.Duration

// SleepFunc waits for the given duration or until the context is done.
// Injectable so tests can assert delays without waiting for them.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Exponential returns a backoff doubling from base: base, 2*base, 4*base...
func Exponential(base time.Duration) BackoffFunc {
	return func(attempt int) time.Duration {
		return base << attempt
	}
}

// Policy bounds the retries of one external call. The zero value is not
// usable; construct with the fields set, or use Default.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int
	// Backoff computes the delay inserted between attempts.
	Backoff BackoffFunc
	// Sleep overrides the delay mechanism. Nil means a real ctx-aware wait.
	Sleep SleepFunc
}

// Default is the policy used by both section generation and persistence:
// 3 attempts with 1s, 2s exponential backoff between them.
func Default() Policy {
	return Policy{
		MaxAttempts: 3,
		Backoff:     Exponential(time.Second),
	}
}

// Do runs op until it succeeds or attempts are exhausted, sleeping between
// failures. It returns the last error once attempts run out, and stops early
// if the context is cancelled during a backoff wait.
func (p Policy) Do(ctx context.Context, op func(ctx context.Context) error) error {
	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	var lastErr error
	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		if err := op(ctx); err == nil {
			return nil
		} else {
			lastErr = err
		}

		if attempt < p.MaxAttempts-1 {
			if err := sleep(ctx, p.Backoff(attempt)); err != nil {
				return fmt.Errorf("retry aborted after attempt %d: %w", attempt+1, err)
			}
		}
	}
	return fmt.Errorf("failed after %d attempts: %w", p.MaxAttempts, lastErr)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
