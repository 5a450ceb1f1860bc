package atom

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/jaypaulb/infinite-kanvas/internal/logutil"
)

// RetryConfig controls exponential backoff for calls to remote models
type RetryConfig struct {
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	MaxAttempts   int
	JitterFactor  float64 // fraction of each delay randomized, 0..1
	OperationName string  // log prefix; empty disables retry logging

	// Retryable reports whether err is transient. nil treats every error as transient.
	Retryable func(error) bool
}

// DefaultRetryConfig is tuned for image generation: a few attempts, since a
// single request can take tens of seconds
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		InitialDelay: 2 * time.Second,
		MaxDelay:     20 * time.Second,
		MaxAttempts:  3,
		JitterFactor: 0.1,
	}
}

func (c RetryConfig) withDefaults() RetryConfig {
	d := DefaultRetryConfig()
	if c.InitialDelay <= 0 {
		c.InitialDelay = d.InitialDelay
	}
	if c.MaxDelay <= 0 {
		c.MaxDelay = d.MaxDelay
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = d.MaxAttempts
	}
	if c.JitterFactor <= 0 {
		c.JitterFactor = d.JitterFactor
	}
	return c
}

func (c RetryConfig) logf(format string, args ...interface{}) {
	if c.OperationName == "" {
		return
	}
	logutil.Infof("[retry] "+c.OperationName+": "+format, args...)
}

// RetryResult reports how a retried call ended
type RetryResult struct {
	Attempts int
	LastErr  error
	Success  bool
}

// Retry runs fn until it succeeds, fails permanently or runs out of attempts
func Retry(ctx context.Context, config RetryConfig, fn func() error) error {
	return RetryWithResult(ctx, config, fn).LastErr
}

// RetryWithResult is Retry with the attempt count. Cancelling ctx while
// waiting between attempts ends the loop with ctx.Err().
func RetryWithResult(ctx context.Context, config RetryConfig, fn func() error) RetryResult {
	config = config.withDefaults()

	var result RetryResult
	for result.Attempts < config.MaxAttempts {
		result.Attempts++
		result.LastErr = fn()
		if result.LastErr == nil {
			result.Success = true
			return result
		}

		if config.Retryable != nil && !config.Retryable(result.LastErr) {
			config.logf("giving up on permanent error: %v", result.LastErr)
			return result
		}
		if result.Attempts == config.MaxAttempts {
			config.logf("failed after %d attempts: %v", result.Attempts, result.LastErr)
			return result
		}

		wait := CalculateBackoff(result.Attempts, config.InitialDelay, config.MaxDelay, config.JitterFactor)
		config.logf("attempt %d/%d failed (%v), next in %v", result.Attempts, config.MaxAttempts, result.LastErr, wait)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			result.LastErr = ctx.Err()
			return result
		case <-timer.C:
		}
	}
	return result
}

// CalculateBackoff doubles initialDelay per attempt (1-indexed), caps it at
// maxDelay and spreads it by ±jitterFactor
func CalculateBackoff(attempt int, initialDelay, maxDelay time.Duration, jitterFactor float64) time.Duration {
	base := math.Min(float64(initialDelay)*math.Pow(2, float64(attempt-1)), float64(maxDelay))
	if jitterFactor > 0 {
		base += (rand.Float64()*2 - 1) * base * jitterFactor
	}
	return time.Duration(math.Max(base, 0))
}
