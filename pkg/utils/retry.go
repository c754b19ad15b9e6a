// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package utils provides retry and telemetry helpers for the family service.
package utils

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// RetryConfig holds retry configuration for operations
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	// Retryable reports whether a failed attempt is worth repeating; nil retries everything
	Retryable func(error) bool
}

// NewRetryConfig creates a RetryConfig with specified parameters
func NewRetryConfig(maxAttempts int, baseDelay, maxDelay time.Duration) RetryConfig {
	return RetryConfig{
		MaxAttempts: maxAttempts,
		BaseDelay:   baseDelay,
		MaxDelay:    maxDelay,
	}
}

// WithRetryable returns a copy of the config that stops on errors the predicate rejects
func (c RetryConfig) WithRetryable(retryable func(error) bool) RetryConfig {
	c.Retryable = retryable
	return c
}

// backoff returns baseDelay * 2^(attempt-1), capped at MaxDelay
func (c RetryConfig) backoff(attempt int) time.Duration {
	delay := time.Duration(1<<uint(attempt-1)) * c.BaseDelay
	if delay > c.MaxDelay {
		delay = c.MaxDelay
	}
	return delay
}

// RetryWithExponentialBackoff executes a function with exponential backoff retry logic.
// A non-retryable error is returned immediately without waiting.
func RetryWithExponentialBackoff(ctx context.Context, config RetryConfig, fn func() error) error {
	var lastErr error

	for attempt := 0; attempt < config.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay := config.backoff(attempt)

			slog.WarnContext(ctx, "retrying operation",
				"attempt", attempt+1,
				"total_attempts", config.MaxAttempts,
				"retry_delay_ms", delay.Milliseconds(),
			)

			timer := time.NewTimer(delay)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return fmt.Errorf("retry cancelled: %w", ctx.Err())
			}
		}

		err := fn()
		if err == nil {
			if attempt > 0 {
				slog.InfoContext(ctx, "retry succeeded",
					"attempt", attempt+1,
					"total_attempts", config.MaxAttempts,
				)
			}
			return nil
		}

		lastErr = err
		slog.ErrorContext(ctx, "operation attempt failed",
			"attempt", attempt+1,
			"total_attempts", config.MaxAttempts,
			"error", err,
		)

		if config.Retryable != nil && !config.Retryable(err) {
			return fmt.Errorf("permanent failure on attempt %d: %w", attempt+1, err)
		}
	}

	return fmt.Errorf("failed after %d attempts: %w", config.MaxAttempts, lastErr)
}
