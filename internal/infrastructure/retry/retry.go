// Package retry re-runs startup connection checks with capped exponential
// backoff. Errors wrapped with NewPermanent end the loop at once.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// Backoff describes how many times to try and how long to wait in between.
type Backoff struct {
	// Attempts counts the initial try. Values below 1 mean a single try.
	Attempts int

	// Initial is the wait before the second try.
	Initial time.Duration

	// Max caps every wait, jitter included.
	Max time.Duration

	// Factor multiplies the wait after each failed try.
	Factor float64

	// Jitter adds up to this fraction of the wait at random.
	Jitter float64
}

// Connect is the backoff used when dialing Postgres and Redis at startup.
// Backing services started alongside the server may need a few seconds.
func Connect(attempts int) Backoff {
	return Backoff{
		Attempts: attempts,
		Initial:  500 * time.Millisecond,
		Max:      5 * time.Second,
		Factor:   2.0,
		Jitter:   0.2,
	}
}

// Wait returns the pause after failed try n (1-based).
func (b Backoff) Wait(n int) time.Duration {
	d := float64(b.Initial)
	for i := 1; i < n; i++ {
		d *= b.Factor
		if b.Max > 0 && d >= float64(b.Max) {
			return b.Max
		}
	}
	if b.Jitter > 0 {
		d += rand.Float64() * d * b.Jitter
	}
	if b.Max > 0 && d > float64(b.Max) {
		return b.Max
	}
	return time.Duration(d)
}

// Notify observes a failed try before the loop waits. It may be nil.
type Notify func(attempt int, err error, wait time.Duration)

// Do calls fn until it succeeds, returns a permanent error, runs out of
// attempts, or ctx is done. The last error from fn is returned.
func Do(ctx context.Context, b Backoff, fn func(context.Context) error, notify Notify) error {
	attempts := b.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err = fn(ctx); err == nil || IsPermanent(err) || attempt == attempts {
			return err
		}

		wait := b.Wait(attempt)
		if notify != nil {
			notify(attempt, err, wait)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return err
}

// Permanent marks an error that another try cannot fix.
type Permanent struct {
	Err error
}

func (p *Permanent) Error() string {
	if p.Err == nil {
		return "permanent error"
	}
	return p.Err.Error()
}

func (p *Permanent) Unwrap() error {
	return p.Err
}

// NewPermanent wraps err so Do stops on it. A nil err stays nil.
func NewPermanent(err error) error {
	if err == nil {
		return nil
	}
	return &Permanent{Err: err}
}

// IsPermanent reports whether err, or any error it wraps, is Permanent.
func IsPermanent(err error) bool {
	var permanent *Permanent
	return errors.As(err, &permanent)
}
