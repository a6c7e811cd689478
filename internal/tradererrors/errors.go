package tradererrors

import (
	"errors"
	"fmt"
	"time"
)

// Error kinds reported to callers
var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrQuotaExceeded    = errors.New("quota exceeded")
	ErrCooldownActive   = errors.New("cooldown active")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// validation errors
var (
	ErrMissingCaller   = fmt.Errorf("%w: missing guild or user id", ErrValidation)
	ErrEmptyName       = fmt.Errorf("%w: item name is empty", ErrValidation)
	ErrInvalidQuantity = fmt.Errorf("%w: invalid quantity", ErrValidation)
	ErrInvalidScore    = fmt.Errorf("%w: score must be between 1 and 5", ErrValidation)
	ErrSelfRating      = fmt.Errorf("%w: cannot rate yourself", ErrValidation)
	ErrSameParty       = fmt.Errorf("%w: trade participants must differ", ErrValidation)
	ErrNotParticipant  = fmt.Errorf("%w: caller is not a trade participant", ErrValidation)
	ErrListingLimit    = fmt.Errorf("%w: listing limit reached", ErrValidation)
	ErrTradeTerminal   = fmt.Errorf("%w: trade already terminal", ErrValidation)
	ErrInvalidTier     = fmt.Errorf("%w: unknown tier", ErrValidation)
)

// not found errors
var (
	ErrItemNotFound  = fmt.Errorf("item %w", ErrNotFound)
	ErrTradeNotFound = fmt.Errorf("trade %w", ErrNotFound)
)

// QuotaError reports the alert quota that was hit
type QuotaError struct {
	Tier  string
	Quota int
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("%s: %s tier allows %d alert(s)", ErrQuotaExceeded, e.Tier, e.Quota)
}

func (e *QuotaError) Unwrap() error { return ErrQuotaExceeded }

// CooldownError reports how long the caller has to wait
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s: retry in %s", ErrCooldownActive, e.Remaining.Round(time.Second))
}

func (e *CooldownError) Unwrap() error { return ErrCooldownActive }

// Unavailable marks err as a retryable infrastructure failure
func Unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}
