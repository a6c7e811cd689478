package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	model "trader-bot/internal/models"
	"trader-bot/internal/tradererrors"
)

type ownerKey struct {
	guildID string
	userID  string
}

// MemoryRepo is a concurrency-safe in-memory implementation of TraderDB.
// Every mutation runs under the write lock, so writes to the same row never interleave.
type MemoryRepo struct {
	mu       sync.RWMutex
	profiles map[ownerKey]model.Profile
	stock    map[ownerKey]map[string]model.StockItem    // owner -> key -> item
	wishlist map[ownerKey]map[string]model.WishlistItem // owner -> key -> item
	alerts   map[ownerKey]map[string]model.Alert        // owner -> key -> alert
	ratings  map[string][]model.Rating                  // guild -> ratings in insertion order
	trades   map[string]model.Trade                     // trade id -> trade
	now      func() time.Time
}

var _ TraderDB = (*MemoryRepo)(nil)

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		profiles: make(map[ownerKey]model.Profile),
		stock:    make(map[ownerKey]map[string]model.StockItem),
		wishlist: make(map[ownerKey]map[string]model.WishlistItem),
		alerts:   make(map[ownerKey]map[string]model.Alert),
		ratings:  make(map[string][]model.Rating),
		trades:   make(map[string]model.Trade),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// EnsureProfile returns the profile, creating a Free tier one on first interaction
func (r *MemoryRepo) EnsureProfile(ctx context.Context, guildID, userID string) (model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureProfileLocked(guildID, userID), nil
}

func (r *MemoryRepo) ensureProfileLocked(guildID, userID string) model.Profile {
	k := ownerKey{guildID, userID}
	if p, ok := r.profiles[k]; ok {
		return p
	}
	now := r.now()
	p := model.Profile{GuildID: guildID, UserID: userID, Tier: model.TierFree, CreatedAt: now, UpdatedAt: now}
	r.profiles[k] = p
	return p
}

// UpdateProfile applies the non-nil fields of upd
func (r *MemoryRepo) UpdateProfile(ctx context.Context, guildID, userID string, upd model.ProfileUpdate) (model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.ensureProfileLocked(guildID, userID)
	if upd.Bio != nil {
		p.Bio = *upd.Bio
	}
	if upd.TradeChannelID != nil {
		p.TradeChannelID = *upd.TradeChannelID
	}
	p.UpdatedAt = r.now()
	r.profiles[ownerKey{guildID, userID}] = p
	return p, nil
}

// SetTier changes the premium tier of a member
func (r *MemoryRepo) SetTier(ctx context.Context, guildID, userID string, tier model.Tier) (model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.ensureProfileLocked(guildID, userID)
	p.Tier = tier
	p.UpdatedAt = r.now()
	r.profiles[ownerKey{guildID, userID}] = p
	return p, nil
}

// RecordResponse adds a response score to each listed member
func (r *MemoryRepo) RecordResponse(ctx context.Context, guildID string, userIDs []string, score int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range userIDs {
		p := r.ensureProfileLocked(guildID, id)
		p.ResponseTotal += score
		p.ResponseCount++
		r.profiles[ownerKey{guildID, id}] = p
	}
	return nil
}

// AddStock adds quantity to an existing row or creates it
func (r *MemoryRepo) AddStock(ctx context.Context, item model.StockItem, limit int) (model.StockItem, int, error) {
	if item.Quantity > model.MaxQuantity {
		return model.StockItem{}, 0, fmt.Errorf("add stock %q: %w", item.Name, tradererrors.ErrInvalidQuantity)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	k := ownerKey{item.GuildID, item.OwnerID}
	rows := r.stock[k]
	if rows == nil {
		rows = make(map[string]model.StockItem)
		r.stock[k] = rows
	}

	existing, ok := rows[item.Key]
	if !ok {
		if limit > 0 && len(rows) >= limit {
			return model.StockItem{}, 0, fmt.Errorf("add stock %q: %w", item.Name, tradererrors.ErrListingLimit)
		}
		rows[item.Key] = item
		return item, 0, nil
	}

	prev := existing.Quantity
	if item.Quantity > model.MaxQuantity-prev {
		return model.StockItem{}, 0, fmt.Errorf("add stock %q: %w: %d + %d exceeds %d",
			item.Name, tradererrors.ErrInvalidQuantity, prev, item.Quantity, model.MaxQuantity)
	}
	existing.Quantity += item.Quantity
	if item.Note != "" {
		existing.Note = item.Note
	}
	existing.UpdatedAt = item.UpdatedAt
	rows[item.Key] = existing
	return existing, prev, nil
}

// SetStockQuantity sets the quantity of an existing row, deleting it at zero
func (r *MemoryRepo) SetStockQuantity(ctx context.Context, guildID, ownerID, key string, qty int) (model.StockItem, int, error) {
	if qty < 0 || qty > model.MaxQuantity {
		return model.StockItem{}, 0, fmt.Errorf("set stock %q: %w", key, tradererrors.ErrInvalidQuantity)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rows := r.stock[ownerKey{guildID, ownerID}]
	existing, ok := rows[key]
	if !ok {
		return model.StockItem{}, 0, fmt.Errorf("set stock %q: %w", key, tradererrors.ErrItemNotFound)
	}

	prev := existing.Quantity
	if qty == 0 {
		delete(rows, key)
		existing.Quantity = 0
		return existing, prev, nil
	}
	existing.Quantity = qty
	existing.UpdatedAt = r.now()
	rows[key] = existing
	return existing, prev, nil
}

// DeleteStock removes a row
func (r *MemoryRepo) DeleteStock(ctx context.Context, guildID, ownerID, key string) (model.StockItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := r.stock[ownerKey{guildID, ownerID}]
	existing, ok := rows[key]
	if !ok {
		return model.StockItem{}, fmt.Errorf("delete stock %q: %w", key, tradererrors.ErrItemNotFound)
	}
	delete(rows, key)
	return existing, nil
}

// ClearStock removes every row of the owner and returns how many were deleted
func (r *MemoryRepo) ClearStock(ctx context.Context, guildID, ownerID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := ownerKey{guildID, ownerID}
	n := len(r.stock[k])
	delete(r.stock, k)
	return n, nil
}

// ListStock returns the owner's stock ordered by normalized name
func (r *MemoryRepo) ListStock(ctx context.Context, guildID, ownerID string) ([]model.StockItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.stock[ownerKey{guildID, ownerID}]
	items := make([]model.StockItem, 0, len(rows))
	for _, it := range rows {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Key < items[j].Key })
	return items, nil
}

// ListGuildStock returns every stock row in the guild ordered by name then owner
func (r *MemoryRepo) ListGuildStock(ctx context.Context, guildID string) ([]model.StockItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []model.StockItem
	for k, rows := range r.stock {
		if k.guildID != guildID {
			continue
		}
		for _, it := range rows {
			items = append(items, it)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Key != items[j].Key {
			return items[i].Key < items[j].Key
		}
		return items[i].OwnerID < items[j].OwnerID
	})
	return items, nil
}

// AddWishlist inserts a wishlist row or replaces its note
func (r *MemoryRepo) AddWishlist(ctx context.Context, item model.WishlistItem, limit int) (model.WishlistItem, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := ownerKey{item.GuildID, item.OwnerID}
	rows := r.wishlist[k]
	if rows == nil {
		rows = make(map[string]model.WishlistItem)
		r.wishlist[k] = rows
	}

	if existing, ok := rows[item.Key]; ok {
		existing.Note = item.Note
		rows[item.Key] = existing
		return existing, false, nil
	}
	if limit > 0 && len(rows) >= limit {
		return model.WishlistItem{}, false, fmt.Errorf("add wishlist %q: %w", item.Name, tradererrors.ErrListingLimit)
	}
	rows[item.Key] = item
	return item, true, nil
}

// DeleteWishlist removes a wishlist row
func (r *MemoryRepo) DeleteWishlist(ctx context.Context, guildID, ownerID, key string) (model.WishlistItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := r.wishlist[ownerKey{guildID, ownerID}]
	existing, ok := rows[key]
	if !ok {
		return model.WishlistItem{}, fmt.Errorf("delete wishlist %q: %w", key, tradererrors.ErrItemNotFound)
	}
	delete(rows, key)
	return existing, nil
}

// ClearWishlist removes every wishlist row of the owner
func (r *MemoryRepo) ClearWishlist(ctx context.Context, guildID, ownerID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := ownerKey{guildID, ownerID}
	n := len(r.wishlist[k])
	delete(r.wishlist, k)
	return n, nil
}

// ListWishlist returns the owner's wishlist ordered by normalized name
func (r *MemoryRepo) ListWishlist(ctx context.Context, guildID, ownerID string) ([]model.WishlistItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.wishlist[ownerKey{guildID, ownerID}]
	items := make([]model.WishlistItem, 0, len(rows))
	for _, it := range rows {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Key < items[j].Key })
	return items, nil
}

// ListGuildWishlists returns every wishlist row in the guild
func (r *MemoryRepo) ListGuildWishlists(ctx context.Context, guildID string) ([]model.WishlistItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []model.WishlistItem
	for k, rows := range r.wishlist {
		if k.guildID != guildID {
			continue
		}
		for _, it := range rows {
			items = append(items, it)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// AddAlert inserts an alert while the owner is under quota
func (r *MemoryRepo) AddAlert(ctx context.Context, alert model.Alert, quota int) (model.Alert, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := ownerKey{alert.GuildID, alert.OwnerID}
	rows := r.alerts[k]
	if rows == nil {
		rows = make(map[string]model.Alert)
		r.alerts[k] = rows
	}

	if existing, ok := rows[alert.Key]; ok {
		return existing, false, nil
	}
	if len(rows) >= quota {
		return model.Alert{}, false, fmt.Errorf("add alert %q: %w", alert.Name, tradererrors.ErrQuotaExceeded)
	}
	rows[alert.Key] = alert
	return alert, true, nil
}

// DeleteAlert removes an alert
func (r *MemoryRepo) DeleteAlert(ctx context.Context, guildID, ownerID, key string) (model.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := r.alerts[ownerKey{guildID, ownerID}]
	existing, ok := rows[key]
	if !ok {
		return model.Alert{}, fmt.Errorf("delete alert %q: %w", key, tradererrors.ErrItemNotFound)
	}
	delete(rows, key)
	return existing, nil
}

// ListAlerts returns the owner's alerts ordered by normalized name
func (r *MemoryRepo) ListAlerts(ctx context.Context, guildID, ownerID string) ([]model.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.alerts[ownerKey{guildID, ownerID}]
	alerts := make([]model.Alert, 0, len(rows))
	for _, a := range rows {
		alerts = append(alerts, a)
	}
	sort.Slice(alerts, func(i, j int) bool { return alerts[i].Key < alerts[j].Key })
	return alerts, nil
}

// ListGuildAlerts returns every alert in the guild
func (r *MemoryRepo) ListGuildAlerts(ctx context.Context, guildID string) ([]model.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var alerts []model.Alert
	for k, rows := range r.alerts {
		if k.guildID != guildID {
			continue
		}
		for _, a := range rows {
			alerts = append(alerts, a)
		}
	}
	sort.Slice(alerts, func(i, j int) bool { return alerts[i].ID < alerts[j].ID })
	return alerts, nil
}

// RecordRating inserts a rating unless the pair is still cooling down
func (r *MemoryRepo) RecordRating(ctx context.Context, rating model.Rating, cooldown time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ratings := r.ratings[rating.GuildID]
	for i := len(ratings) - 1; i >= 0; i-- {
		prev := ratings[i]
		if prev.RaterID != rating.RaterID || prev.RateeID != rating.RateeID {
			continue
		}
		if elapsed := rating.CreatedAt.Sub(prev.CreatedAt); elapsed < cooldown {
			return &tradererrors.CooldownError{Remaining: cooldown - elapsed}
		}
		break
	}

	r.ratings[rating.GuildID] = append(ratings, rating)
	return nil
}

// RatingSummary aggregates the ratings received by rateeID
func (r *MemoryRepo) RatingSummary(ctx context.Context, guildID, rateeID string) (model.RatingSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summary := model.RatingSummary{RateeID: rateeID}
	for _, rt := range r.ratings[guildID] {
		if rt.RateeID != rateeID {
			continue
		}
		summary.Total += rt.Score
		summary.Count++
		if rt.CreatedAt.After(summary.LastAt) {
			summary.LastAt = rt.CreatedAt
		}
	}
	return summary, nil
}

// RatingSummaries aggregates ratings for every rated member of the guild
func (r *MemoryRepo) RatingSummaries(ctx context.Context, guildID string) ([]model.RatingSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byRatee := make(map[string]*model.RatingSummary)
	for _, rt := range r.ratings[guildID] {
		s, ok := byRatee[rt.RateeID]
		if !ok {
			s = &model.RatingSummary{RateeID: rt.RateeID}
			byRatee[rt.RateeID] = s
		}
		s.Total += rt.Score
		s.Count++
		if rt.CreatedAt.After(s.LastAt) {
			s.LastAt = rt.CreatedAt
		}
	}

	summaries := make([]model.RatingSummary, 0, len(byRatee))
	for _, s := range byRatee {
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].RateeID < summaries[j].RateeID })
	return summaries, nil
}

// RecentReviews returns up to limit ratings with review text for rateeID, newest first
func (r *MemoryRepo) RecentReviews(ctx context.Context, guildID, rateeID string, limit int) ([]model.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reviews := make([]model.Rating, 0, limit)
	ratings := r.ratings[guildID]
	for i := len(ratings) - 1; i >= 0 && len(reviews) < limit; i-- {
		if ratings[i].RateeID == rateeID && ratings[i].Review != "" {
			reviews = append(reviews, ratings[i])
		}
	}
	return reviews, nil
}

// CreateTrade stores a new trade
func (r *MemoryRepo) CreateTrade(ctx context.Context, trade model.Trade) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.trades[trade.ID]; ok {
		return fmt.Errorf("create trade %s: duplicate id", trade.ID)
	}
	r.trades[trade.ID] = trade
	return nil
}

// GetTrade returns a trade by id
func (r *MemoryRepo) GetTrade(ctx context.Context, tradeID string) (model.Trade, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trade, ok := r.trades[tradeID]
	if !ok {
		return model.Trade{}, fmt.Errorf("get trade %s: %w", tradeID, tradererrors.ErrTradeNotFound)
	}
	return trade, nil
}

// TransitionTrade moves a Started trade to a terminal state
func (r *MemoryRepo) TransitionTrade(ctx context.Context, tradeID string, to model.TradeState, at time.Time) (model.Trade, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	trade, ok := r.trades[tradeID]
	if !ok {
		return model.Trade{}, fmt.Errorf("transition trade %s: %w", tradeID, tradererrors.ErrTradeNotFound)
	}
	if trade.State.Terminal() {
		return model.Trade{}, fmt.Errorf("transition trade %s from %s: %w", tradeID, trade.State, tradererrors.ErrTradeTerminal)
	}

	trade.State = to
	trade.UpdatedAt = at
	closed := at
	trade.ClosedAt = &closed
	r.trades[tradeID] = trade
	return trade, nil
}

// ListOpenTrades returns Started trades involving userID, oldest first
func (r *MemoryRepo) ListOpenTrades(ctx context.Context, guildID, userID string) ([]model.Trade, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var trades []model.Trade
	for _, t := range r.trades {
		if t.GuildID != guildID || t.State != model.TradeStarted {
			continue
		}
		if t.PartyA == userID || t.PartyB == userID {
			trades = append(trades, t)
		}
	}
	sort.Slice(trades, func(i, j int) bool { return trades[i].ID < trades[j].ID })
	return trades, nil
}
