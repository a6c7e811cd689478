package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"trader-bot/internal/tradererrors"

	"github.com/jackc/pgx/v5/pgconn"
)

// classify wraps err with op, marking infrastructure failures as retryable.
// Domain errors raised inside a transaction pass through unchanged.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, tradererrors.ErrValidation),
		errors.Is(err, tradererrors.ErrNotFound),
		errors.Is(err, tradererrors.ErrQuotaExceeded),
		errors.Is(err, tradererrors.ErrCooldownActive),
		errors.Is(err, tradererrors.ErrStoreUnavailable):
		return fmt.Errorf("%s: %w", op, err)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w", op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if retryableCode(pgErr.Code) {
			return tradererrors.Unavailable(op, err)
		}
		if pgErr.Code == "22003" { // numeric_value_out_of_range
			return fmt.Errorf("%s: %w: %w", op, tradererrors.ErrInvalidQuantity, err)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	// network failures, timeouts and a closed pool
	return tradererrors.Unavailable(op, err)
}

func retryableCode(code string) bool {
	switch code {
	case "40001", // serialization_failure
		"40P01", // deadlock_detected
		"53300", // too_many_connections
		"57P01", // admin_shutdown
		"57P03": // cannot_connect_now
		return true
	}
	return strings.HasPrefix(code, "08") // connection exception class
}
