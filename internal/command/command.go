// Package command defines every request the platform layer can send as a
// closed set of types, and routes each one to the service that owns it.
package command

import "trader-bot/internal/models"

// Command is implemented only by the types in this package
type Command interface {
	// Name is the dotted operation name, e.g. "stock.add"
	Name() string
	sealed()
}

type base struct{}

func (base) sealed() {}

// StockAdd adds Quantity of Name to the caller's stock
type StockAdd struct {
	base
	Item     string
	Quantity int
	Note     string
}

// StockChange sets the quantity of the caller's stock best matching Item
type StockChange struct {
	base
	Item     string
	Quantity int
}

// StockRemove deletes the caller's stock best matching Item
type StockRemove struct {
	base
	Item string
}

// StockClear deletes all of the caller's stock
type StockClear struct{ base }

// StockView lists OwnerID's stock, or the caller's when empty
type StockView struct {
	base
	OwnerID string
}

// StockSearch finds guild members holding stock resembling Term
type StockSearch struct {
	base
	Term string
}

type WishlistAdd struct {
	base
	Item string
	Note string
}

type WishlistRemove struct {
	base
	Item string
}

type WishlistClear struct{ base }

type WishlistView struct {
	base
	OwnerID string
}

// WishlistSearch finds guild members wanting something resembling Term
type WishlistSearch struct {
	base
	Term string
}

type AlertAdd struct {
	base
	Item string
}

type AlertRemove struct {
	base
	Item string
}

type AlertView struct{ base }

// ReputationRate rates RateeID from 1 to 5 with an optional written review
type ReputationRate struct {
	base
	RateeID string
	Score   int
	Review  string
}

// ReputationAggregate reads UserID's reputation, or the caller's when empty
type ReputationAggregate struct {
	base
	UserID string
}

// ReputationReviews lists the latest written reviews about UserID, or the caller when empty
type ReputationReviews struct {
	base
	UserID string
}

type ReputationLeaderboard struct {
	base
	Limit int
}

// TradeStart opens a trade with CounterpartID
type TradeStart struct {
	base
	CounterpartID string
	Item          string
}

type TradeComplete struct {
	base
	TradeID string
}

type TradeCancel struct {
	base
	TradeID string
}

type TradeGet struct {
	base
	TradeID string
}

// TradeListOpen lists the caller's started trades
type TradeListOpen struct{ base }

// ProfileGet reads UserID's profile, or the caller's when empty
type ProfileGet struct {
	base
	UserID string
}

type ProfileUpdate struct {
	base
	Update models.ProfileUpdate
}

// ProfileSetTier grants Tier to UserID. Only the platform layer may send it.
type ProfileSetTier struct {
	base
	UserID string
	Tier   models.Tier
}

func (StockAdd) Name() string              { return "stock.add" }
func (StockChange) Name() string           { return "stock.change" }
func (StockRemove) Name() string           { return "stock.remove" }
func (StockClear) Name() string            { return "stock.clear" }
func (StockView) Name() string             { return "stock.view" }
func (StockSearch) Name() string           { return "stock.search" }
func (WishlistAdd) Name() string           { return "wishlist.add" }
func (WishlistRemove) Name() string        { return "wishlist.remove" }
func (WishlistClear) Name() string         { return "wishlist.clear" }
func (WishlistView) Name() string          { return "wishlist.view" }
func (WishlistSearch) Name() string        { return "wishlist.search" }
func (AlertAdd) Name() string              { return "alert.add" }
func (AlertRemove) Name() string           { return "alert.remove" }
func (AlertView) Name() string             { return "alert.view" }
func (ReputationRate) Name() string        { return "reputation.rate" }
func (ReputationAggregate) Name() string   { return "reputation.aggregate" }
func (ReputationReviews) Name() string     { return "reputation.reviews" }
func (ReputationLeaderboard) Name() string { return "reputation.leaderboard" }
func (TradeStart) Name() string            { return "trade.start" }
func (TradeComplete) Name() string         { return "trade.complete" }
func (TradeCancel) Name() string           { return "trade.cancel" }
func (TradeGet) Name() string              { return "trade.get" }
func (TradeListOpen) Name() string         { return "trade.list_open" }
func (ProfileGet) Name() string            { return "profile.get" }
func (ProfileUpdate) Name() string         { return "profile.update" }
func (ProfileSetTier) Name() string        { return "profile.set_tier" }

// Cleared is the result of a clear command
type Cleared struct {
	Removed int `json:"removed"`
}
