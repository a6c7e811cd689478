package profile

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"trader-bot/internal/models"
	"trader-bot/internal/repository"
	"trader-bot/internal/retry"
	"trader-bot/internal/tradererrors"
)

// MaxBioLength is the longest bio accepted, in characters
const MaxBioLength = 500

// ProfileService reads and edits member profiles
type ProfileService struct {
	repo  repository.ProfileStore
	retry *retry.Policy
}

// NewProfileService creates a new ProfileService instance
func NewProfileService(repo repository.ProfileStore, policy *retry.Policy) *ProfileService {
	if policy == nil {
		policy = retry.Default()
	}
	return &ProfileService{repo: repo, retry: policy}
}

// Get returns the profile of userID, creating it on first interaction
func (s *ProfileService) Get(ctx context.Context, guildID, userID string) (models.Profile, error) {
	if guildID == "" || userID == "" {
		return models.Profile{}, fmt.Errorf("service: %w", tradererrors.ErrMissingCaller)
	}

	var p models.Profile
	err := s.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		p, err = s.repo.EnsureProfile(ctx, guildID, userID)
		return err
	})
	if err != nil {
		return models.Profile{}, fmt.Errorf("service: failed to load profile of %s: %w", userID, err)
	}
	return p, nil
}

// Update applies the set fields of upd to the caller's profile
func (s *ProfileService) Update(ctx context.Context, caller models.Caller, upd models.ProfileUpdate) (models.Profile, error) {
	if caller.Anonymous() {
		return models.Profile{}, fmt.Errorf("service: %w", tradererrors.ErrMissingCaller)
	}
	if upd.Bio != nil {
		bio := strings.TrimSpace(*upd.Bio)
		if utf8.RuneCountInString(bio) > MaxBioLength {
			return models.Profile{}, fmt.Errorf("service: %w - bio longer than %d characters", tradererrors.ErrValidation, MaxBioLength)
		}
		upd.Bio = &bio
	}
	if upd.TradeChannelID != nil {
		ch := strings.TrimSpace(*upd.TradeChannelID)
		upd.TradeChannelID = &ch
	}

	var p models.Profile
	err := s.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		p, err = s.repo.UpdateProfile(ctx, caller.GuildID, caller.UserID, upd)
		return err
	})
	if err != nil {
		return models.Profile{}, fmt.Errorf("service: failed to update profile of %s: %w", caller.UserID, err)
	}
	return p, nil
}

// SetTier grants a premium tier. Callers are authorized by the platform layer,
// never by the member editing their own profile.
func (s *ProfileService) SetTier(ctx context.Context, guildID, userID string, tier models.Tier) (models.Profile, error) {
	if guildID == "" || userID == "" {
		return models.Profile{}, fmt.Errorf("service: %w", tradererrors.ErrMissingCaller)
	}
	if !tier.Valid() {
		return models.Profile{}, fmt.Errorf("service: %w %q", tradererrors.ErrInvalidTier, tier)
	}

	var p models.Profile
	err := s.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		p, err = s.repo.SetTier(ctx, guildID, userID, tier)
		return err
	})
	if err != nil {
		return models.Profile{}, fmt.Errorf("service: failed to set tier of %s: %w", userID, err)
	}
	return p, nil
}
