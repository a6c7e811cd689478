package models

import (
	"math"
	"time"
)

// Caller identifies the already-authorized member issuing a command
type Caller struct {
	GuildID string `json:"guild_id"`
	UserID  string `json:"user_id"`
}

// Anonymous reports whether the caller lacks a guild or user id
func (c Caller) Anonymous() bool {
	return c.GuildID == "" || c.UserID == ""
}

// Tier is the premium level governing alert quota
type Tier string

const (
	TierFree Tier = "free"
	TierPlus Tier = "plus"
	TierPro  Tier = "pro"
)

// Valid reports whether t is a known tier
func (t Tier) Valid() bool {
	switch t {
	case TierFree, TierPlus, TierPro:
		return true
	}
	return false
}

// Profile represents a member of a guild
type Profile struct {
	GuildID        string    `json:"guild_id"`
	UserID         string    `json:"user_id"`
	Bio            string    `json:"bio"`
	TradeChannelID string    `json:"trade_channel_id,omitempty"`
	Tier           Tier      `json:"tier"`
	ResponseTotal  int       `json:"response_total"`
	ResponseCount  int       `json:"response_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AverageResponse returns the mean response score, or 0 when nothing was recorded
func (p Profile) AverageResponse() float64 {
	if p.ResponseCount == 0 {
		return 0
	}
	return float64(p.ResponseTotal) / float64(p.ResponseCount)
}

// ProfileUpdate carries the fields a member may edit on their own profile; nil fields are left untouched.
// Tier is not among them: it is granted by the platform layer through a separate command.
type ProfileUpdate struct {
	Bio            *string
	TradeChannelID *string
}

// MaxQuantity is the largest quantity one stock row may hold
const MaxQuantity = math.MaxInt32

// StockItem is an item a member has available for trade
type StockItem struct {
	ID        string    `json:"id"`
	GuildID   string    `json:"guild_id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Key       string    `json:"-"` // normalized name
	Quantity  int       `json:"quantity"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WishlistItem is an item a member is looking for
type WishlistItem struct {
	ID        string    `json:"id"`
	GuildID   string    `json:"guild_id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Key       string    `json:"-"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Alert is a watched item name
type Alert struct {
	ID        string    `json:"id"`
	GuildID   string    `json:"guild_id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Key       string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// SearchHit is one member's stock or wishlist entry matching a search term
type SearchHit struct {
	OwnerID  string  `json:"owner_id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity,omitempty"`
	Note     string  `json:"note,omitempty"`
	Score    float64 `json:"score"`
}

// TradeState is the lifecycle state of a trade
type TradeState string

const (
	TradeStarted   TradeState = "started"
	TradeCompleted TradeState = "completed"
	TradeCancelled TradeState = "cancelled"
)

// Terminal reports whether no further transition is allowed
func (s TradeState) Terminal() bool {
	return s == TradeCompleted || s == TradeCancelled
}

// Trade is a negotiation between two members
type Trade struct {
	ID        string     `json:"id"`
	GuildID   string     `json:"guild_id"`
	PartyA    string     `json:"party_a"`
	PartyB    string     `json:"party_b"`
	Item      string     `json:"item"`
	State     TradeState `json:"state"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
}

// Counterpart returns the other participant, or "" when userID is not a participant
func (t Trade) Counterpart(userID string) string {
	switch userID {
	case t.PartyA:
		return t.PartyB
	case t.PartyB:
		return t.PartyA
	}
	return ""
}

// Rating is a score one member gave another
type Rating struct {
	ID        string    `json:"id"`
	GuildID   string    `json:"guild_id"`
	RaterID   string    `json:"rater_id"`
	RateeID   string    `json:"ratee_id"`
	Score     int       `json:"score"`
	Review    string    `json:"review,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RatingSummary holds the raw aggregate of all ratings for one ratee
type RatingSummary struct {
	RateeID string    `json:"ratee_id"`
	Total   int       `json:"total"`
	Count   int       `json:"count"`
	LastAt  time.Time `json:"last_at"`
}

// Aggregate is the derived reputation of a member
type Aggregate struct {
	UserID string  `json:"user_id"`
	Mean   float64 `json:"mean"`
	Count  int     `json:"count"`
}

// LeaderboardEntry is one ranked member
type LeaderboardEntry struct {
	Rank         int       `json:"rank"`
	UserID       string    `json:"user_id"`
	Mean         float64   `json:"mean"`
	Count        int       `json:"count"`
	LastRatingAt time.Time `json:"last_rating_at"`
}

// NotificationKind is the type of an outbound event
type NotificationKind string

const (
	KindAlertMatch       NotificationKind = "alert_match"
	KindTradeStateChange NotificationKind = "trade_state_change"
)

// Notification is an event delivered to the platform layer
type Notification struct {
	ID        string           `json:"id"`
	GuildID   string           `json:"guild_id"`
	Recipient string           `json:"recipient"`
	Kind      NotificationKind `json:"kind"`
	Payload   map[string]any   `json:"payload"`
	CreatedAt time.Time        `json:"created_at"`
}
