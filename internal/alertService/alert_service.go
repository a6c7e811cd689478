package alert

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"trader-bot/internal/fuzzy"
	"trader-bot/internal/models"
	"trader-bot/internal/notify"
	"trader-bot/internal/repository"
	"trader-bot/internal/retry"
	"trader-bot/internal/tradererrors"
	"trader-bot/internal/worker"
	"trader-bot/utils"
)

// Quotas maps each tier to the number of alerts it may hold
type Quotas map[models.Tier]int

// DefaultQuotas are the alert quotas per tier
func DefaultQuotas() Quotas {
	return Quotas{
		models.TierFree: 1,
		models.TierPlus: 5,
		models.TierPro:  20,
	}
}

// For returns the quota of tier, treating unknown tiers as Free
func (q Quotas) For(tier models.Tier) int {
	if n, ok := q[tier]; ok {
		return n
	}
	return q[models.TierFree]
}

// Store is the persistence the alert service needs
type Store interface {
	repository.ProfileStore
	repository.AlertStore
	repository.WishlistStore
}

// Notifier accepts notifications without blocking
type Notifier interface {
	Enqueue(n models.Notification) bool
}

// AlertService manages alerts and matches new stock against alerts and wishlists
type AlertService struct {
	repo     Store
	resolver *fuzzy.Resolver
	notifier Notifier
	jobs     *worker.Pool
	quotas   Quotas
	retry    *retry.Policy
	now      func() time.Time
}

// Option configures an AlertService
type Option func(*AlertService)

// WithQuotas sets the per-tier alert quotas
func WithQuotas(q Quotas) Option {
	return func(s *AlertService) { s.quotas = q }
}

// WithRetry sets the store retry policy
func WithRetry(p *retry.Policy) Option {
	return func(s *AlertService) { s.retry = p }
}

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(s *AlertService) { s.now = now }
}

// NewAlertService creates a new AlertService; match jobs run on jobs
func NewAlertService(repo Store, resolver *fuzzy.Resolver, notifier Notifier, jobs *worker.Pool, opts ...Option) *AlertService {
	s := &AlertService{
		repo:     repo,
		resolver: resolver,
		notifier: notifier,
		jobs:     jobs,
		quotas:   DefaultQuotas(),
		retry:    retry.Default(),
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add registers an alert for name; the caller's tier is read on every call
func (s *AlertService) Add(ctx context.Context, caller models.Caller, name string) (models.Alert, error) {
	if caller.Anonymous() {
		return models.Alert{}, fmt.Errorf("service: %w", tradererrors.ErrMissingCaller)
	}
	key := fuzzy.Normalize(name)
	if key == "" {
		return models.Alert{}, fmt.Errorf("service: %w", tradererrors.ErrEmptyName)
	}

	var profile models.Profile
	err := s.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		profile, err = s.repo.EnsureProfile(ctx, caller.GuildID, caller.UserID)
		return err
	})
	if err != nil {
		return models.Alert{}, fmt.Errorf("service: failed to load profile of %s: %w", caller.UserID, err)
	}
	quota := s.quotas.For(profile.Tier)

	alert := models.Alert{
		ID:        utils.GenerateSortableID(),
		GuildID:   caller.GuildID,
		OwnerID:   caller.UserID,
		Name:      strings.Join(strings.Fields(name), " "),
		Key:       key,
		CreatedAt: s.now(),
	}

	var stored models.Alert
	err = s.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		stored, _, err = s.repo.AddAlert(ctx, alert, quota)
		return err
	})
	if errors.Is(err, tradererrors.ErrQuotaExceeded) {
		return models.Alert{}, fmt.Errorf("service: alert %q for %s: %w", name, caller.UserID, &tradererrors.QuotaError{Tier: string(profile.Tier), Quota: quota})
	}
	if err != nil {
		return models.Alert{}, fmt.Errorf("service: failed to add alert %q for %s: %w", name, caller.UserID, err)
	}
	return stored, nil
}

// Remove deletes the caller's alert best matching name
func (s *AlertService) Remove(ctx context.Context, caller models.Caller, name string) (models.Alert, error) {
	if caller.Anonymous() {
		return models.Alert{}, fmt.Errorf("service: %w", tradererrors.ErrMissingCaller)
	}
	if fuzzy.Normalize(name) == "" {
		return models.Alert{}, fmt.Errorf("service: %w", tradererrors.ErrEmptyName)
	}

	alerts, err := s.View(ctx, caller.GuildID, caller.UserID)
	if err != nil {
		return models.Alert{}, err
	}
	candidates := make([]fuzzy.Candidate, len(alerts))
	for i, a := range alerts {
		candidates[i] = fuzzy.Candidate{Key: a.Key, Name: a.Name, Seq: a.ID}
	}
	match, ok := s.resolver.Resolve(name, candidates)
	if !ok {
		return models.Alert{}, fmt.Errorf("service: no alert matching %q: %w", name, tradererrors.ErrItemNotFound)
	}

	var removed models.Alert
	err = s.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		removed, err = s.repo.DeleteAlert(ctx, caller.GuildID, caller.UserID, match.Key)
		return err
	})
	if err != nil {
		return models.Alert{}, fmt.Errorf("service: failed to remove alert %q for %s: %w", match.Name, caller.UserID, err)
	}
	return removed, nil
}

// View lists the alerts of ownerID ordered by name
func (s *AlertService) View(ctx context.Context, guildID, ownerID string) ([]models.Alert, error) {
	if guildID == "" || ownerID == "" {
		return nil, fmt.Errorf("service: %w", tradererrors.ErrMissingCaller)
	}

	var alerts []models.Alert
	err := s.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		alerts, err = s.repo.ListAlerts(ctx, guildID, ownerID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list alerts for %s: %w", ownerID, err)
	}
	return alerts, nil
}

// StockAdded schedules a match for item without waiting for it
func (s *AlertService) StockAdded(ctx context.Context, item models.StockItem) {
	err := s.jobs.Submit(func(ctx context.Context) {
		if _, err := s.Match(ctx, item); err != nil {
			utils.Warn("alert match failed", map[string]any{
				"guild_id": item.GuildID,
				"owner_id": item.OwnerID,
				"item":     item.Name,
				"error":    err.Error(),
			})
		}
	})
	if err != nil {
		utils.Warn("alert match dropped", map[string]any{
			"guild_id": item.GuildID,
			"owner_id": item.OwnerID,
			"item":     item.Name,
			"error":    err.Error(),
		})
	}
}

// ownerMatch collects what one member watches that matched the new stock
type ownerMatch struct {
	alerts   []string
	wishlist []string
}

// Match finds every other member of the guild whose alerts or wishlist match
// item and enqueues one notification per member. It returns how many were enqueued.
func (s *AlertService) Match(ctx context.Context, item models.StockItem) (int, error) {
	var (
		alerts   []models.Alert
		wishlist []models.WishlistItem
	)
	err := s.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		alerts, err = s.repo.ListGuildAlerts(ctx, item.GuildID)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("service: failed to load alerts for guild %s: %w", item.GuildID, err)
	}
	err = s.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		wishlist, err = s.repo.ListGuildWishlists(ctx, item.GuildID)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("service: failed to load wishlists for guild %s: %w", item.GuildID, err)
	}

	matched := make(map[string]*ownerMatch)
	get := func(owner string) *ownerMatch {
		m, ok := matched[owner]
		if !ok {
			m = &ownerMatch{}
			matched[owner] = m
		}
		return m
	}
	for _, a := range alerts {
		if a.OwnerID != item.OwnerID && s.resolver.Matches(a.Key, item.Key) {
			m := get(a.OwnerID)
			m.alerts = append(m.alerts, a.Name)
		}
	}
	for _, w := range wishlist {
		if w.OwnerID != item.OwnerID && s.resolver.Matches(w.Key, item.Key) {
			m := get(w.OwnerID)
			m.wishlist = append(m.wishlist, w.Name)
		}
	}

	owners := make([]string, 0, len(matched))
	for owner := range matched {
		owners = append(owners, owner)
	}
	sort.Strings(owners)

	sent := 0
	for _, owner := range owners {
		m := matched[owner]
		payload := map[string]any{
			"item":      item.Name,
			"quantity":  item.Quantity,
			"seller_id": item.OwnerID,
		}
		if len(m.alerts) > 0 {
			payload["alerts"] = m.alerts
		}
		if len(m.wishlist) > 0 {
			payload["wishlist"] = m.wishlist
		}
		if s.notifier.Enqueue(notify.NewNotification(item.GuildID, owner, models.KindAlertMatch, payload, s.now())) {
			sent++
		}
	}
	return sent, nil
}
