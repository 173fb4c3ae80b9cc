package generate

import (
	"context"
	"errors"
	"math"
	"net"
	"net/http"
	"time"

	"google.golang.org/genai"
)

const (
	DefaultMaxRetries = 3
	BaseDelay         = 500 * time.Millisecond
	MaxDelay          = 10 * time.Second
)

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	// The caller's deadline is final.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return isRetryableStatus(apiErr.Code)
	}

	// Refused or reset connections surface as *net.OpError, which is also a
	// net.Error, so it is matched first.
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}

	return false
}

// Quota errors (429) are not retried: waiting them out is left to the user.
func isRetryableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

func backoffDelay(attempt int) time.Duration {
	delay := min(time.Duration(float64(BaseDelay)*math.Pow(2, float64(attempt))), MaxDelay)
	return delay
}

type retrier struct {
	maxRetries int
	delay      func(attempt int) time.Duration
}

func defaultRetrier() retrier {
	return retrier{maxRetries: DefaultMaxRetries, delay: backoffDelay}
}

func withRetry[T any](ctx context.Context, r retrier, fn func() (T, error)) (T, error) {
	var result T
	var lastErr error

	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-time.After(r.delay(attempt - 1)):
			}
		}

		result, lastErr = fn()
		if lastErr == nil {
			return result, nil
		}

		if !isRetryable(lastErr) {
			return result, lastErr
		}
	}

	return result, lastErr
}
