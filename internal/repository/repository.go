package repository

import (
	"context"
	"time"

	model "trader-bot/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// ProfileStore persists member profiles
type ProfileStore interface {
	EnsureProfile(ctx context.Context, guildID, userID string) (model.Profile, error)
	UpdateProfile(ctx context.Context, guildID, userID string, upd model.ProfileUpdate) (model.Profile, error)
	SetTier(ctx context.Context, guildID, userID string, tier model.Tier) (model.Profile, error)
	RecordResponse(ctx context.Context, guildID string, userIDs []string, score int) error
}

// StockStore persists stock items, unique per (guild, owner, key)
type StockStore interface {
	// AddStock adds item.Quantity to the row with item.Key, creating it when absent.
	// It returns the stored row and the quantity held before the call. A sum above
	// model.MaxQuantity fails with tradererrors.ErrInvalidQuantity and writes nothing.
	AddStock(ctx context.Context, item model.StockItem, limit int) (model.StockItem, int, error)
	// SetStockQuantity sets the quantity of an existing row; zero deletes it.
	SetStockQuantity(ctx context.Context, guildID, ownerID, key string, qty int) (model.StockItem, int, error)
	DeleteStock(ctx context.Context, guildID, ownerID, key string) (model.StockItem, error)
	ClearStock(ctx context.Context, guildID, ownerID string) (int, error)
	ListStock(ctx context.Context, guildID, ownerID string) ([]model.StockItem, error)
	ListGuildStock(ctx context.Context, guildID string) ([]model.StockItem, error)
}

// WishlistStore persists wishlist items, unique per (guild, owner, key)
type WishlistStore interface {
	// AddWishlist inserts the item or replaces the note of an existing one; created reports an insert.
	AddWishlist(ctx context.Context, item model.WishlistItem, limit int) (model.WishlistItem, bool, error)
	DeleteWishlist(ctx context.Context, guildID, ownerID, key string) (model.WishlistItem, error)
	ClearWishlist(ctx context.Context, guildID, ownerID string) (int, error)
	ListWishlist(ctx context.Context, guildID, ownerID string) ([]model.WishlistItem, error)
	ListGuildWishlists(ctx context.Context, guildID string) ([]model.WishlistItem, error)
}

// AlertStore persists alerts, unique per (guild, owner, key)
type AlertStore interface {
	// AddAlert inserts the alert unless the owner already holds quota alerts.
	// An alert on an already watched key is returned unchanged with created=false.
	AddAlert(ctx context.Context, alert model.Alert, quota int) (model.Alert, bool, error)
	DeleteAlert(ctx context.Context, guildID, ownerID, key string) (model.Alert, error)
	ListAlerts(ctx context.Context, guildID, ownerID string) ([]model.Alert, error)
	ListGuildAlerts(ctx context.Context, guildID string) ([]model.Alert, error)
}

// RatingStore persists ratings
type RatingStore interface {
	// RecordRating inserts r unless the same rater rated the same ratee less than
	// cooldown before r.CreatedAt, in which case it returns *tradererrors.CooldownError.
	RecordRating(ctx context.Context, r model.Rating, cooldown time.Duration) error
	RatingSummary(ctx context.Context, guildID, rateeID string) (model.RatingSummary, error)
	RatingSummaries(ctx context.Context, guildID string) ([]model.RatingSummary, error)
	// RecentReviews returns up to limit ratings of rateeID carrying review text, newest first
	RecentReviews(ctx context.Context, guildID, rateeID string, limit int) ([]model.Rating, error)
}

// TradeStore persists trades
type TradeStore interface {
	CreateTrade(ctx context.Context, trade model.Trade) error
	GetTrade(ctx context.Context, tradeID string) (model.Trade, error)
	// TransitionTrade moves a Started trade to a terminal state
	TransitionTrade(ctx context.Context, tradeID string, to model.TradeState, at time.Time) (model.Trade, error)
	ListOpenTrades(ctx context.Context, guildID, userID string) ([]model.Trade, error)
}

// TraderDB is the full persistent store
type TraderDB interface {
	ProfileStore
	StockStore
	WishlistStore
	AlertStore
	RatingStore
	TradeStore
}
