package kafka

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// newBackoff — экспоненциальная пауза x2 с разбросом ±50%, без ограничения общего времени.
func newBackoff(initial, maxDelay time.Duration) *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = initial
	b.MaxInterval = maxDelay
	b.Multiplier = 2
	b.RandomizationFactor = 0.5
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

// sleep — false, если контекст отменили раньше.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
