package helpers

import model "trader-bot/internal/models"

// Request DTOs
type AddStockRequest struct {
	Item     string `json:"item" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gte=1,lte=2147483647"`
	Note     string `json:"note"`
}

type ChangeStockRequest struct {
	Item     string `json:"item" binding:"required"`
	Quantity *int   `json:"quantity" binding:"required,gte=0,lte=2147483647"`
}

type AddWishlistRequest struct {
	Item string `json:"item" binding:"required"`
	Note string `json:"note"`
}

type AddAlertRequest struct {
	Item string `json:"item" binding:"required"`
}

type RateRequest struct {
	RateeID string `json:"ratee_id" binding:"required"`
	Score   int    `json:"score" binding:"required"`
	Review  string `json:"review"`
}

type StartTradeRequest struct {
	CounterpartID string `json:"counterpart_id" binding:"required"`
	Item          string `json:"item" binding:"required"`
}

// UpdateProfileRequest is the member's own edit; tier is not part of it
type UpdateProfileRequest struct {
	Bio            *string `json:"bio"`
	TradeChannelID *string `json:"trade_channel_id"`
}

type SetTierRequest struct {
	Tier model.Tier `json:"tier" binding:"required"`
}

// Response DTOs
type ProfileResponse struct {
	UserID          string     `json:"user_id"`
	Bio             string     `json:"bio"`
	TradeChannelID  string     `json:"trade_channel_id,omitempty"`
	Tier            model.Tier `json:"tier"`
	AverageResponse float64    `json:"average_response"`
	ResponseCount   int        `json:"response_count"`
	CreatedAt       string     `json:"created_at"`
}

type TradeResponse struct {
	TradeID   string `json:"trade_id"`
	PartyA    string `json:"party_a"`
	PartyB    string `json:"party_b"`
	Item      string `json:"item"`
	State     string `json:"state"`
	CreatedAt string `json:"created_at"`
	ClosedAt  string `json:"closed_at,omitempty"`
}
