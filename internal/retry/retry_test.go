package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"trader-bot/internal/tradererrors"

	"github.com/stretchr/testify/require"
)

func TestPolicy_Do(t *testing.T) {
	t.Parallel()

	unavailable := tradererrors.Unavailable("query", errors.New("connection refused"))

	tests := []struct {
		name      string
		failures  int
		failWith  error
		wantCalls int
		wantErr   error
	}{
		{name: "first_try", failures: 0, wantCalls: 1},
		{name: "recovers_after_two_failures", failures: 2, failWith: unavailable, wantCalls: 3},
		{name: "gives_up_after_three_attempts", failures: 5, failWith: unavailable, wantCalls: 3, wantErr: tradererrors.ErrStoreUnavailable},
		{name: "domain_error_not_retried", failures: 5, failWith: tradererrors.ErrItemNotFound, wantCalls: 1, wantErr: tradererrors.ErrNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := New(3, time.Millisecond)
			calls := 0
			err := p.Do(context.Background(), func(ctx context.Context) error {
				calls++
				if calls <= tc.failures {
					return tc.failWith
				}
				return nil
			})

			require.Equal(t, tc.wantCalls, calls)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPolicy_NilRunsOnce(t *testing.T) {
	t.Parallel()

	var p *Policy
	calls := 0
	err := p.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return tradererrors.ErrStoreUnavailable
	})
	require.ErrorIs(t, err, tradererrors.ErrStoreUnavailable)
	require.Equal(t, 1, calls)
}
