package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"trader-bot/internal/fuzzy"
	"trader-bot/internal/models"
	"trader-bot/internal/repository"
	"trader-bot/internal/retry"
	"trader-bot/internal/tradererrors"
	"trader-bot/utils"
)

const (
	// DefaultListingLimit caps the distinct names one member may list per collection
	DefaultListingLimit = 50
	// SearchLimit caps the hits returned by a community search
	SearchLimit = 20
)

// StockWatcher is told about stock that went from nothing to something.
// It must not block: the inventory operation has already committed.
type StockWatcher interface {
	StockAdded(ctx context.Context, item models.StockItem)
}

// Store is the persistence the inventory service needs
type Store interface {
	repository.ProfileStore
	repository.StockStore
	repository.WishlistStore
}

// InventoryService implements stock and wishlist rules
type InventoryService struct {
	repo     Store
	resolver *fuzzy.Resolver
	retry    *retry.Policy
	watcher  StockWatcher
	limit    int
	now      func() time.Time
}

// Option configures an InventoryService
type Option func(*InventoryService)

// WithWatcher registers the hook run after stock is added
func WithWatcher(w StockWatcher) Option {
	return func(s *InventoryService) { s.watcher = w }
}

// WithRetry sets the store retry policy
func WithRetry(p *retry.Policy) Option {
	return func(s *InventoryService) { s.retry = p }
}

// WithListingLimit sets the per-collection listing limit; zero or less disables it
func WithListingLimit(limit int) Option {
	return func(s *InventoryService) { s.limit = limit }
}

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(s *InventoryService) { s.now = now }
}

// NewInventoryService creates a new InventoryService instance
func NewInventoryService(repo Store, resolver *fuzzy.Resolver, opts ...Option) *InventoryService {
	s := &InventoryService{
		repo:     repo,
		resolver: resolver,
		retry:    retry.Default(),
		limit:    DefaultListingLimit,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddStock adds qty of name to the caller's stock, creating the row when absent
func (s *InventoryService) AddStock(ctx context.Context, caller models.Caller, name string, qty int, note string) (models.StockItem, error) {
	key, err := validateItem(caller, name)
	if err != nil {
		return models.StockItem{}, err
	}
	if qty < 1 || qty > models.MaxQuantity {
		return models.StockItem{}, fmt.Errorf("service: %w - add quantity must be between 1 and %d, got %d", tradererrors.ErrInvalidQuantity, models.MaxQuantity, qty)
	}
	if err := s.ensureProfile(ctx, caller); err != nil {
		return models.StockItem{}, err
	}

	now := s.now()
	item := models.StockItem{
		ID:        utils.GenerateSortableID(),
		GuildID:   caller.GuildID,
		OwnerID:   caller.UserID,
		Name:      strings.Join(strings.Fields(name), " "),
		Key:       key,
		Quantity:  qty,
		Note:      strings.TrimSpace(note),
		CreatedAt: now,
		UpdatedAt: now,
	}

	var (
		stored models.StockItem
		prev   int
	)
	err = s.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		stored, prev, err = s.repo.AddStock(ctx, item, s.limit)
		return err
	})
	if err != nil {
		return models.StockItem{}, fmt.Errorf("service: failed to add stock %q for %s: %w", name, caller.UserID, err)
	}

	s.notifyRaised(ctx, stored, prev)
	return stored, nil
}

// ChangeStock sets the quantity of the stock row best matching name; zero removes it
func (s *InventoryService) ChangeStock(ctx context.Context, caller models.Caller, name string, qty int) (models.StockItem, error) {
	if _, err := validateItem(caller, name); err != nil {
		return models.StockItem{}, err
	}
	if qty < 0 || qty > models.MaxQuantity {
		return models.StockItem{}, fmt.Errorf("service: %w - quantity must be between 0 and %d, got %d", tradererrors.ErrInvalidQuantity, models.MaxQuantity, qty)
	}

	match, err := s.resolveStock(ctx, caller, name)
	if err != nil {
		return models.StockItem{}, err
	}

	var (
		stored models.StockItem
		prev   int
	)
	err = s.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		stored, prev, err = s.repo.SetStockQuantity(ctx, caller.GuildID, caller.UserID, match.Key, qty)
		return err
	})
	if err != nil {
		return models.StockItem{}, fmt.Errorf("service: failed to change stock %q for %s: %w", match.Name, caller.UserID, err)
	}

	s.notifyRaised(ctx, stored, prev)
	return stored, nil
}

// RemoveStock deletes the stock row best matching name
func (s *InventoryService) RemoveStock(ctx context.Context, caller models.Caller, name string) (models.StockItem, error) {
	if _, err := validateItem(caller, name); err != nil {
		return models.StockItem{}, err
	}

	match, err := s.resolveStock(ctx, caller, name)
	if err != nil {
		return models.StockItem{}, err
	}

	var removed models.StockItem
	err = s.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		removed, err = s.repo.DeleteStock(ctx, caller.GuildID, caller.UserID, match.Key)
		return err
	})
	if err != nil {
		return models.StockItem{}, fmt.Errorf("service: failed to remove stock %q for %s: %w", match.Name, caller.UserID, err)
	}
	return removed, nil
}

// ClearStock deletes all of the caller's stock and returns how many rows went
func (s *InventoryService) ClearStock(ctx context.Context, caller models.Caller) (int, error) {
	if caller.Anonymous() {
		return 0, fmt.Errorf("service: %w", tradererrors.ErrMissingCaller)
	}

	var n int
	err := s.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		n, err = s.repo.ClearStock(ctx, caller.GuildID, caller.UserID)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("service: failed to clear stock for %s: %w", caller.UserID, err)
	}
	return n, nil
}

// ViewStock lists the stock of ownerID ordered by name
func (s *InventoryService) ViewStock(ctx context.Context, guildID, ownerID string) ([]models.StockItem, error) {
	if guildID == "" || ownerID == "" {
		return nil, fmt.Errorf("service: %w", tradererrors.ErrMissingCaller)
	}

	var items []models.StockItem
	err := s.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		items, err = s.repo.ListStock(ctx, guildID, ownerID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list stock for %s: %w", ownerID, err)
	}
	return items, nil
}

// AddWishlist puts name on the caller's wishlist; an existing entry gets the new note
func (s *InventoryService) AddWishlist(ctx context.Context, caller models.Caller, name, note string) (models.WishlistItem, error) {
	key, err := validateItem(caller, name)
	if err != nil {
		return models.WishlistItem{}, err
	}
	if err := s.ensureProfile(ctx, caller); err != nil {
		return models.WishlistItem{}, err
	}

	item := models.WishlistItem{
		ID:        utils.GenerateSortableID(),
		GuildID:   caller.GuildID,
		OwnerID:   caller.UserID,
		Name:      strings.Join(strings.Fields(name), " "),
		Key:       key,
		Note:      strings.TrimSpace(note),
		CreatedAt: s.now(),
	}

	var stored models.WishlistItem
	err = s.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		stored, _, err = s.repo.AddWishlist(ctx, item, s.limit)
		return err
	})
	if err != nil {
		return models.WishlistItem{}, fmt.Errorf("service: failed to add wishlist %q for %s: %w", name, caller.UserID, err)
	}
	return stored, nil
}

// RemoveWishlist deletes the wishlist entry best matching name
func (s *InventoryService) RemoveWishlist(ctx context.Context, caller models.Caller, name string) (models.WishlistItem, error) {
	if _, err := validateItem(caller, name); err != nil {
		return models.WishlistItem{}, err
	}

	items, err := s.ViewWishlist(ctx, caller.GuildID, caller.UserID)
	if err != nil {
		return models.WishlistItem{}, err
	}
	candidates := make([]fuzzy.Candidate, len(items))
	for i, it := range items {
		candidates[i] = fuzzy.Candidate{Key: it.Key, Name: it.Name, Seq: it.ID}
	}
	match, ok := s.resolver.Resolve(name, candidates)
	if !ok {
		return models.WishlistItem{}, fmt.Errorf("service: no wishlist entry matching %q: %w", name, tradererrors.ErrItemNotFound)
	}

	var removed models.WishlistItem
	err = s.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		removed, err = s.repo.DeleteWishlist(ctx, caller.GuildID, caller.UserID, match.Key)
		return err
	})
	if err != nil {
		return models.WishlistItem{}, fmt.Errorf("service: failed to remove wishlist %q for %s: %w", match.Name, caller.UserID, err)
	}
	return removed, nil
}

// ClearWishlist empties the caller's wishlist
func (s *InventoryService) ClearWishlist(ctx context.Context, caller models.Caller) (int, error) {
	if caller.Anonymous() {
		return 0, fmt.Errorf("service: %w", tradererrors.ErrMissingCaller)
	}

	var n int
	err := s.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		n, err = s.repo.ClearWishlist(ctx, caller.GuildID, caller.UserID)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("service: failed to clear wishlist for %s: %w", caller.UserID, err)
	}
	return n, nil
}

// ViewWishlist lists the wishlist of ownerID ordered by name
func (s *InventoryService) ViewWishlist(ctx context.Context, guildID, ownerID string) ([]models.WishlistItem, error) {
	if guildID == "" || ownerID == "" {
		return nil, fmt.Errorf("service: %w", tradererrors.ErrMissingCaller)
	}

	var items []models.WishlistItem
	err := s.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		items, err = s.repo.ListWishlist(ctx, guildID, ownerID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list wishlist for %s: %w", ownerID, err)
	}
	return items, nil
}

// SearchStock finds who in the guild has stock resembling term
func (s *InventoryService) SearchStock(ctx context.Context, guildID, term string) ([]models.SearchHit, error) {
	if err := validateSearch(guildID, term); err != nil {
		return nil, err
	}

	var items []models.StockItem
	err := s.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		items, err = s.repo.ListGuildStock(ctx, guildID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("service: failed to search stock for %q: %w", term, err)
	}

	hits := make([]models.SearchHit, 0)
	for _, it := range items {
		if score, ok := s.resolver.Score(term, it.Key); ok {
			hits = append(hits, models.SearchHit{OwnerID: it.OwnerID, Name: it.Name, Quantity: it.Quantity, Note: it.Note, Score: score})
		}
	}
	return rankHits(hits), nil
}

// SearchWishlist finds who in the guild wants something resembling term
func (s *InventoryService) SearchWishlist(ctx context.Context, guildID, term string) ([]models.SearchHit, error) {
	if err := validateSearch(guildID, term); err != nil {
		return nil, err
	}

	var items []models.WishlistItem
	err := s.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		items, err = s.repo.ListGuildWishlists(ctx, guildID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("service: failed to search wishlists for %q: %w", term, err)
	}

	hits := make([]models.SearchHit, 0)
	for _, it := range items {
		if score, ok := s.resolver.Score(term, it.Key); ok {
			hits = append(hits, models.SearchHit{OwnerID: it.OwnerID, Name: it.Name, Note: it.Note, Score: score})
		}
	}
	return rankHits(hits), nil
}

// rankHits orders by score desc, then name, then owner, keeping the top SearchLimit
func rankHits(hits []models.SearchHit) []models.SearchHit {
	sort.Slice(hits, func(i, j int) bool {
		a, b := hits[i], hits[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.OwnerID < b.OwnerID
	})
	if len(hits) > SearchLimit {
		hits = hits[:SearchLimit]
	}
	return hits
}

func validateSearch(guildID, term string) error {
	if guildID == "" {
		return fmt.Errorf("service: %w", tradererrors.ErrMissingCaller)
	}
	if fuzzy.Normalize(term) == "" {
		return fmt.Errorf("service: %w", tradererrors.ErrEmptyName)
	}
	return nil
}

func (s *InventoryService) resolveStock(ctx context.Context, caller models.Caller, name string) (fuzzy.Match, error) {
	items, err := s.ViewStock(ctx, caller.GuildID, caller.UserID)
	if err != nil {
		return fuzzy.Match{}, err
	}
	candidates := make([]fuzzy.Candidate, len(items))
	for i, it := range items {
		candidates[i] = fuzzy.Candidate{Key: it.Key, Name: it.Name, Seq: it.ID}
	}
	match, ok := s.resolver.Resolve(name, candidates)
	if !ok {
		return fuzzy.Match{}, fmt.Errorf("service: no stock matching %q: %w", name, tradererrors.ErrItemNotFound)
	}
	return match, nil
}

func (s *InventoryService) ensureProfile(ctx context.Context, caller models.Caller) error {
	err := s.retry.Do(ctx, func(ctx context.Context) error {
		_, err := s.repo.EnsureProfile(ctx, caller.GuildID, caller.UserID)
		return err
	})
	if err != nil {
		return fmt.Errorf("service: failed to load profile of %s: %w", caller.UserID, err)
	}
	return nil
}

// notifyRaised runs the watcher when a row went from zero to a positive quantity
func (s *InventoryService) notifyRaised(ctx context.Context, item models.StockItem, prev int) {
	if s.watcher == nil || prev != 0 || item.Quantity <= 0 {
		return
	}
	s.watcher.StockAdded(context.WithoutCancel(ctx), item)
}

// validateItem checks the caller and returns the normalized name
func validateItem(caller models.Caller, name string) (string, error) {
	if caller.Anonymous() {
		return "", fmt.Errorf("service: %w", tradererrors.ErrMissingCaller)
	}
	key := fuzzy.Normalize(name)
	if key == "" {
		return "", fmt.Errorf("service: %w", tradererrors.ErrEmptyName)
	}
	return key, nil
}
