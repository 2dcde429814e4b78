package service

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/rollcall/internal/presence/store"
	"github.com/cenkalti/backoff/v4"
)

const maxTransientRetries = 5

// DefaultBackoff is the retry schedule for transient store failures.
func DefaultBackoff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 20 * time.Millisecond
	b.MaxInterval = 500 * time.Millisecond
	b.MaxElapsedTime = 3 * time.Second
	return b
}

// retryTransient runs op until it succeeds, fails permanently, or the
// schedule runs out. Only store.ErrTransient is retried.
func retryTransient(ctx context.Context, schedule func() backoff.BackOff, op func() error) error {
	if schedule == nil {
		schedule = DefaultBackoff
	}
	b := backoff.WithContext(backoff.WithMaxRetries(schedule(), maxTransientRetries), ctx)

	return backoff.Retry(func() error {
		err := op()
		if err == nil || errors.Is(err, store.ErrTransient) {
			return err
		}
		return backoff.Permanent(err)
	}, b)
}
