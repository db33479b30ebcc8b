package usersapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/jass-platform/distribution-service/internal/api/metrics"
)

const (
	defaultMaxAttempts = 3
	defaultBaseDelay   = time.Second
)

// retryable reports whether a failure is the transient server-fault signal.
// Only an upstream 500 qualifies: 4xx, other 5xx (502/503/504), network
// errors, timeouts and mapping failures are all permanent.
func retryable(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusInternalServerError
}

// withRetry runs op under bounded exponential backoff, retrying only
// failures classified by retryable. On exhaustion the last failure is
// returned unchanged. The backoff timer honors ctx cancellation.
func withRetry(ctx context.Context, endpoint string, maxAttempts int, baseDelay time.Duration, op func() error) error {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if baseDelay <= 0 {
		baseDelay = defaultBaseDelay
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = baseDelay
	// Deterministic growth; jitter buys nothing against a single upstream.
	bo.RandomizationFactor = 0
	bo.MaxElapsedTime = 0

	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := op()
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return backoff.Permanent(err)
		}
		if attempt < maxAttempts {
			// A retry will follow this failure.
			metrics.UpstreamRetriesTotal.WithLabelValues(endpoint).Inc()
		}
		return err
	}, backoff.WithContext(backoff.WithMaxRetries(bo, uint64(maxAttempts-1)), ctx))
}
