package reputation

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"trader-bot/internal/models"
	"trader-bot/internal/repository"
	"trader-bot/internal/retry"
	"trader-bot/internal/tradererrors"
	"trader-bot/utils"

	"github.com/shopspring/decimal"
)

// Defaults for the rating rules
const (
	DefaultCooldown         = 24 * time.Hour
	DefaultMinRatings       = 3
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
	MaxReviewLength         = 300
	DefaultReviewLimit      = 5
)

// Store is the persistence the reputation service needs
type Store interface {
	repository.ProfileStore
	repository.RatingStore
}

// ReputationService handles ratings, aggregates and the leaderboard
type ReputationService struct {
	repo       Store
	retry      *retry.Policy
	cooldown   time.Duration
	minRatings int
	now        func() time.Time
}

// Option configures a ReputationService
type Option func(*ReputationService)

// WithCooldown sets the minimum time between two ratings of the same pair
func WithCooldown(d time.Duration) Option {
	return func(s *ReputationService) { s.cooldown = d }
}

// WithMinRatings sets how many ratings a member needs to appear on the leaderboard
func WithMinRatings(n int) Option {
	return func(s *ReputationService) { s.minRatings = n }
}

// WithRetry sets the store retry policy
func WithRetry(p *retry.Policy) Option {
	return func(s *ReputationService) { s.retry = p }
}

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(s *ReputationService) { s.now = now }
}

// NewReputationService creates a new ReputationService instance
func NewReputationService(repo Store, opts ...Option) *ReputationService {
	s := &ReputationService{
		repo:       repo,
		retry:      retry.Default(),
		cooldown:   DefaultCooldown,
		minRatings: DefaultMinRatings,
		now:        func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rate records score and an optional written review from the caller about
// rateeID and returns the ratee's new aggregate.
func (s *ReputationService) Rate(ctx context.Context, caller models.Caller, rateeID string, score int, review string) (models.Aggregate, error) {
	if caller.Anonymous() || rateeID == "" {
		return models.Aggregate{}, fmt.Errorf("service: %w", tradererrors.ErrMissingCaller)
	}
	if caller.UserID == rateeID {
		return models.Aggregate{}, fmt.Errorf("service: %w", tradererrors.ErrSelfRating)
	}
	if score < 1 || score > 5 {
		return models.Aggregate{}, fmt.Errorf("service: %w - got %d", tradererrors.ErrInvalidScore, score)
	}
	review = strings.TrimSpace(review)
	if utf8.RuneCountInString(review) > MaxReviewLength {
		return models.Aggregate{}, fmt.Errorf("service: %w - review longer than %d characters", tradererrors.ErrValidation, MaxReviewLength)
	}

	for _, id := range []string{caller.UserID, rateeID} {
		if err := s.ensureProfile(ctx, caller.GuildID, id); err != nil {
			return models.Aggregate{}, err
		}
	}

	rating := models.Rating{
		ID:        utils.GenerateSortableID(),
		GuildID:   caller.GuildID,
		RaterID:   caller.UserID,
		RateeID:   rateeID,
		Score:     score,
		Review:    review,
		CreatedAt: s.now(),
	}
	err := s.retry.Do(ctx, func(ctx context.Context) error {
		return s.repo.RecordRating(ctx, rating, s.cooldown)
	})
	if err != nil {
		return models.Aggregate{}, fmt.Errorf("service: failed to record rating of %s by %s: %w", rateeID, caller.UserID, err)
	}

	utils.Debug("rating recorded", map[string]any{
		"guild_id": caller.GuildID,
		"rater_id": caller.UserID,
		"ratee_id": rateeID,
		"score":    score,
		"reviewed": review != "",
	})
	return s.Aggregate(ctx, caller.GuildID, rateeID)
}

// Aggregate returns the mean score, rounded to one decimal, and rating count of rateeID
func (s *ReputationService) Aggregate(ctx context.Context, guildID, rateeID string) (models.Aggregate, error) {
	if guildID == "" || rateeID == "" {
		return models.Aggregate{}, fmt.Errorf("service: %w", tradererrors.ErrMissingCaller)
	}

	var summary models.RatingSummary
	err := s.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		summary, err = s.repo.RatingSummary(ctx, guildID, rateeID)
		return err
	})
	if err != nil {
		return models.Aggregate{}, fmt.Errorf("service: failed to aggregate ratings of %s: %w", rateeID, err)
	}

	return models.Aggregate{UserID: rateeID, Mean: mean(summary), Count: summary.Count}, nil
}

// Reviews returns the latest written reviews about rateeID, newest first
func (s *ReputationService) Reviews(ctx context.Context, guildID, rateeID string) ([]models.Rating, error) {
	if guildID == "" || rateeID == "" {
		return nil, fmt.Errorf("service: %w", tradererrors.ErrMissingCaller)
	}

	var reviews []models.Rating
	err := s.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		reviews, err = s.repo.RecentReviews(ctx, guildID, rateeID, DefaultReviewLimit)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("service: failed to load reviews of %s: %w", rateeID, err)
	}
	return reviews, nil
}

// Leaderboard ranks members with at least the minimum number of ratings by
// mean desc, count desc, most recent rating desc, returning the top limit.
func (s *ReputationService) Leaderboard(ctx context.Context, guildID string, limit int) ([]models.LeaderboardEntry, error) {
	if guildID == "" {
		return nil, fmt.Errorf("service: %w", tradererrors.ErrMissingCaller)
	}
	switch {
	case limit <= 0:
		limit = DefaultLeaderboardLimit
	case limit > MaxLeaderboardLimit:
		limit = MaxLeaderboardLimit
	}

	var summaries []models.RatingSummary
	err := s.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		summaries, err = s.repo.RatingSummaries(ctx, guildID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("service: failed to load ratings for guild %s: %w", guildID, err)
	}

	var eligible []models.RatingSummary
	for _, sm := range summaries {
		if sm.Count >= s.minRatings && sm.Count > 0 {
			eligible = append(eligible, sm)
		}
	}
	sort.Slice(eligible, func(i, j int) bool { return ranksAbove(eligible[i], eligible[j]) })

	if len(eligible) > limit {
		eligible = eligible[:limit]
	}
	entries := make([]models.LeaderboardEntry, len(eligible))
	for i, sm := range eligible {
		entries[i] = models.LeaderboardEntry{
			Rank:         i + 1,
			UserID:       sm.RateeID,
			Mean:         mean(sm),
			Count:        sm.Count,
			LastRatingAt: sm.LastAt,
		}
	}
	return entries, nil
}

func (s *ReputationService) ensureProfile(ctx context.Context, guildID, userID string) error {
	err := s.retry.Do(ctx, func(ctx context.Context) error {
		_, err := s.repo.EnsureProfile(ctx, guildID, userID)
		return err
	})
	if err != nil {
		return fmt.Errorf("service: failed to load profile of %s: %w", userID, err)
	}
	return nil
}

// ranksAbove compares exact means by cross-multiplication; rounding only happens for display
func ranksAbove(a, b models.RatingSummary) bool {
	if l, r := a.Total*b.Count, b.Total*a.Count; l != r {
		return l > r
	}
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	if !a.LastAt.Equal(b.LastAt) {
		return a.LastAt.After(b.LastAt)
	}
	return a.RateeID < b.RateeID
}

func mean(sm models.RatingSummary) float64 {
	if sm.Count == 0 {
		return 0
	}
	return decimal.NewFromInt(int64(sm.Total)).
		Div(decimal.NewFromInt(int64(sm.Count))).
		Round(1).
		InexactFloat64()
}
