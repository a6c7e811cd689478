package retry

import (
	"context"
	"errors"
	"time"

	"trader-bot/internal/tradererrors"

	"github.com/eapache/go-resiliency/retrier"
)

// Default policy values
const (
	DefaultAttempts = 3
	DefaultBackoff  = 50 * time.Millisecond
)

// Policy retries store calls that fail with tradererrors.ErrStoreUnavailable
type Policy struct {
	r *retrier.Retrier
}

// storeClassifier retries only infrastructure failures; domain errors fail fast
type storeClassifier struct{}

func (storeClassifier) Classify(err error) retrier.Action {
	switch {
	case err == nil:
		return retrier.Succeed
	case errors.Is(err, tradererrors.ErrStoreUnavailable):
		return retrier.Retry
	default:
		return retrier.Fail
	}
}

// New creates a policy making at most attempts calls with exponential backoff
func New(attempts int, backoff time.Duration) *Policy {
	if attempts < 1 {
		attempts = DefaultAttempts
	}
	if backoff <= 0 {
		backoff = DefaultBackoff
	}
	r := retrier.New(retrier.ExponentialBackoff(attempts-1, backoff), storeClassifier{})
	r.SetJitter(0.25)
	return &Policy{r: r}
}

// Default returns the 3-attempt policy
func Default() *Policy {
	return New(DefaultAttempts, DefaultBackoff)
}

// Do runs fn until it succeeds, fails with a non-retryable error or attempts run out
func (p *Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if p == nil {
		return fn(ctx)
	}
	return p.r.RunCtx(ctx, fn)
}
