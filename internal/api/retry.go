package api

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/wacloud/client-go/internal/apierrors"
)

// RetryConfig configures retry behavior for failed API operations.
// A nil *RetryConfig disables retries entirely: the operation is invoked
// once, directly.
type RetryConfig struct {
	// MaxRetries is the maximum number of retry attempts after the first
	// try, so an operation runs at most MaxRetries+1 times.
	MaxRetries int
	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration
	// MaxDelay caps the backoff delay between attempts.
	MaxDelay time.Duration
	// Multiplier is the factor by which the delay grows after each wait.
	Multiplier float64
	// RetryOnRateLimit controls whether rate-limit errors (HTTP 429) are
	// retried. When a rate-limit error carries a Retry-After hint, the
	// hint replaces the computed backoff for that one wait.
	RetryOnRateLimit bool
}

// DefaultRetryConfig returns the default retry configuration.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:       3,
		InitialDelay:     time.Second,
		MaxDelay:         30 * time.Second,
		Multiplier:       2.0,
		RetryOnRateLimit: true,
	}
}

// normalized returns a copy with out-of-range fields replaced by defaults,
// so a partially filled config merges over the default schedule.
func (r *RetryConfig) normalized() RetryConfig {
	cfg := *r
	def := DefaultRetryConfig()
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = def.MaxRetries
	}
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = def.InitialDelay
	}
	if cfg.MaxDelay < cfg.InitialDelay {
		cfg.MaxDelay = def.MaxDelay
		if cfg.MaxDelay < cfg.InitialDelay {
			cfg.MaxDelay = cfg.InitialDelay
		}
	}
	if cfg.Multiplier <= 1 {
		cfg.Multiplier = def.Multiplier
	}
	return cfg
}

// Delay returns the backoff delay inserted after the given attempt
// (0-based): min(InitialDelay * Multiplier^attempt, MaxDelay). The
// sequence is monotonically non-decreasing.
func (r *RetryConfig) Delay(attempt int) time.Duration {
	cfg := r.normalized()
	delay := float64(cfg.InitialDelay) * math.Pow(cfg.Multiplier, float64(attempt))
	if delay > float64(cfg.MaxDelay) {
		delay = float64(cfg.MaxDelay)
	}
	return time.Duration(delay)
}

// Do executes op up to MaxRetries+1 times with exponential backoff.
//
// Attempts are strictly sequential: attempt N+1 never starts before
// attempt N has failed. The policy is stateless across calls. On success
// the result is returned immediately with no further attempts; when
// attempts are exhausted, the last observed error is returned unchanged
// so diagnostic fields (status code, provider error code, trace id)
// survive to the caller.
//
// Classification per attempt:
//   - *apierrors.ValidationError: never retried, returned immediately.
//   - rate-limit errors with RetryOnRateLimit=false: returned immediately.
//   - rate-limit errors with a Retry-After hint: the hint replaces the
//     computed backoff for exactly one wait; later waits resume the
//     schedule.
//   - anything else: retried on the backoff schedule.
//
// The backoff wait honors ctx: cancelling the context aborts the wait and
// returns ctx.Err(). The caller's context is also the end-to-end deadline
// across the whole retry sequence.
func (r *RetryConfig) Do(ctx context.Context, op func(context.Context) error) error {
	if r == nil {
		return op(ctx)
	}

	cfg := r.normalized()

	var lastErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}

		// Stamp the 1-based attempt number onto transport failures for
		// caller-side diagnostics.
		var netErr *apierrors.NetworkError
		if errors.As(lastErr, &netErr) {
			netErr.Attempt = attempt + 1
		}

		if !apierrors.Retryable(lastErr) {
			return lastErr
		}
		if apierrors.IsRateLimit(lastErr) && !cfg.RetryOnRateLimit {
			return lastErr
		}
		if attempt == cfg.MaxRetries {
			return lastErr
		}

		wait := cfg.Delay(attempt)
		if hint := apierrors.RetryAfterHint(lastErr); hint > 0 {
			wait = hint
		}
		if err := sleep(ctx, wait); err != nil {
			return err
		}
	}

	return lastErr
}

// sleep waits for d or until ctx is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
