package handler

import (
	"context"
	"net/http"
	"strconv"

	"trader-bot/internal/command"
	model "trader-bot/internal/models"
	"trader-bot/services/trader/helpers"
	"trader-bot/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=trader_handler.go -destination=mock_dispatcher.go -package=handler

// Dispatcher runs a command on behalf of a caller
type Dispatcher interface {
	Dispatch(ctx context.Context, caller model.Caller, cmd command.Command) (any, error)
}

type TraderHandler struct {
	dispatcher Dispatcher
}

func NewTraderHandler(dispatcher Dispatcher) *TraderHandler {
	return &TraderHandler{dispatcher: dispatcher}
}

// exec dispatches cmd and writes the error response when it fails
func (h *TraderHandler) exec(c *gin.Context, handlerName string, cmd command.Command) (any, bool) {
	caller := helpers.CallerFrom(c)
	result, err := h.dispatcher.Dispatch(c.Request.Context(), caller, cmd)
	if err != nil {
		helpers.WriteError(c, err)
		status, _ := helpers.MapErrorToHTTP(err)
		fields := map[string]any{
			"handler":  handlerName,
			"command":  cmd.Name(),
			"guild_id": caller.GuildID,
			"user_id":  caller.UserID,
			"status":   status,
			"error":    err.Error(),
		}
		if status >= http.StatusInternalServerError {
			utils.Error(handlerName+": command failed", fields)
		} else {
			utils.Warn(handlerName+": command rejected", fields)
		}
		return nil, false
	}
	return result, true
}

// AddStockHandler handles POST /stock
func (h *TraderHandler) AddStockHandler(c *gin.Context) {
	var req helpers.AddStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddStockHandler", err)
		return
	}

	result, ok := h.exec(c, "AddStockHandler", command.StockAdd{Item: req.Item, Quantity: req.Quantity, Note: req.Note})
	if !ok {
		return
	}

	utils.JSONResponse(c, http.StatusCreated, result, "stock added successfully")
	helpers.LogSuccess("AddStockHandler", "stock added successfully", map[string]any{
		"item":     req.Item,
		"quantity": req.Quantity,
	})
}

// ChangeStockHandler handles PATCH /stock
func (h *TraderHandler) ChangeStockHandler(c *gin.Context) {
	var req helpers.ChangeStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ChangeStockHandler", err)
		return
	}

	result, ok := h.exec(c, "ChangeStockHandler", command.StockChange{Item: req.Item, Quantity: *req.Quantity})
	if !ok {
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, "stock changed successfully")
	helpers.LogSuccess("ChangeStockHandler", "stock changed successfully", map[string]any{
		"item":     req.Item,
		"quantity": *req.Quantity,
	})
}

// RemoveStockHandler handles DELETE /stock/:item
func (h *TraderHandler) RemoveStockHandler(c *gin.Context) {
	item := c.Param("item")
	result, ok := h.exec(c, "RemoveStockHandler", command.StockRemove{Item: item})
	if !ok {
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, "stock removed successfully")
	helpers.LogSuccess("RemoveStockHandler", "stock removed successfully", map[string]any{"item": item})
}

// ClearStockHandler handles DELETE /stock
func (h *TraderHandler) ClearStockHandler(c *gin.Context) {
	result, ok := h.exec(c, "ClearStockHandler", command.StockClear{})
	if !ok {
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, "stock cleared successfully")
	helpers.LogSuccess("ClearStockHandler", "stock cleared successfully", nil)
}

// ViewStockHandler handles GET /stock?owner=
func (h *TraderHandler) ViewStockHandler(c *gin.Context) {
	owner := c.Query("owner")
	result, ok := h.exec(c, "ViewStockHandler", command.StockView{OwnerID: owner})
	if !ok {
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, "stock retrieved successfully")
}

// AddWishlistHandler handles POST /wishlist
func (h *TraderHandler) AddWishlistHandler(c *gin.Context) {
	var req helpers.AddWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddWishlistHandler", err)
		return
	}

	result, ok := h.exec(c, "AddWishlistHandler", command.WishlistAdd{Item: req.Item, Note: req.Note})
	if !ok {
		return
	}

	utils.JSONResponse(c, http.StatusCreated, result, "wishlist item added successfully")
	helpers.LogSuccess("AddWishlistHandler", "wishlist item added successfully", map[string]any{"item": req.Item})
}

// RemoveWishlistHandler handles DELETE /wishlist/:item
func (h *TraderHandler) RemoveWishlistHandler(c *gin.Context) {
	item := c.Param("item")
	result, ok := h.exec(c, "RemoveWishlistHandler", command.WishlistRemove{Item: item})
	if !ok {
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, "wishlist item removed successfully")
	helpers.LogSuccess("RemoveWishlistHandler", "wishlist item removed successfully", map[string]any{"item": item})
}

// ClearWishlistHandler handles DELETE /wishlist
func (h *TraderHandler) ClearWishlistHandler(c *gin.Context) {
	result, ok := h.exec(c, "ClearWishlistHandler", command.WishlistClear{})
	if !ok {
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, "wishlist cleared successfully")
}

// ViewWishlistHandler handles GET /wishlist?owner=
func (h *TraderHandler) ViewWishlistHandler(c *gin.Context) {
	result, ok := h.exec(c, "ViewWishlistHandler", command.WishlistView{OwnerID: c.Query("owner")})
	if !ok {
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, "wishlist retrieved successfully")
}

// AddAlertHandler handles POST /alerts
func (h *TraderHandler) AddAlertHandler(c *gin.Context) {
	var req helpers.AddAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddAlertHandler", err)
		return
	}

	result, ok := h.exec(c, "AddAlertHandler", command.AlertAdd{Item: req.Item})
	if !ok {
		return
	}

	utils.JSONResponse(c, http.StatusCreated, result, "alert added successfully")
	helpers.LogSuccess("AddAlertHandler", "alert added successfully", map[string]any{"item": req.Item})
}

// RemoveAlertHandler handles DELETE /alerts/:item
func (h *TraderHandler) RemoveAlertHandler(c *gin.Context) {
	item := c.Param("item")
	result, ok := h.exec(c, "RemoveAlertHandler", command.AlertRemove{Item: item})
	if !ok {
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, "alert removed successfully")
	helpers.LogSuccess("RemoveAlertHandler", "alert removed successfully", map[string]any{"item": item})
}

// ViewAlertsHandler handles GET /alerts
func (h *TraderHandler) ViewAlertsHandler(c *gin.Context) {
	result, ok := h.exec(c, "ViewAlertsHandler", command.AlertView{})
	if !ok {
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, "alerts retrieved successfully")
}

// RateHandler handles POST /ratings
func (h *TraderHandler) RateHandler(c *gin.Context) {
	var req helpers.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RateHandler", err)
		return
	}

	result, ok := h.exec(c, "RateHandler", command.ReputationRate{RateeID: req.RateeID, Score: req.Score, Review: req.Review})
	if !ok {
		return
	}

	utils.JSONResponse(c, http.StatusCreated, result, "rating recorded successfully")
	helpers.LogSuccess("RateHandler", "rating recorded successfully", map[string]any{
		"ratee_id": req.RateeID,
		"score":    req.Score,
	})
}

// AggregateHandler handles GET /users/:user_id/reputation
func (h *TraderHandler) AggregateHandler(c *gin.Context) {
	result, ok := h.exec(c, "AggregateHandler", command.ReputationAggregate{UserID: c.Param("user_id")})
	if !ok {
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, "reputation retrieved successfully")
}

// LeaderboardHandler handles GET /leaderboard?limit=
func (h *TraderHandler) LeaderboardHandler(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			helpers.HandleBindError(c, "LeaderboardHandler", err)
			return
		}
		limit = n
	}

	result, ok := h.exec(c, "LeaderboardHandler", command.ReputationLeaderboard{Limit: limit})
	if !ok {
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, "leaderboard retrieved successfully")
}

// StartTradeHandler handles POST /trades
func (h *TraderHandler) StartTradeHandler(c *gin.Context) {
	var req helpers.StartTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "StartTradeHandler", err)
		return
	}

	result, ok := h.exec(c, "StartTradeHandler", command.TradeStart{CounterpartID: req.CounterpartID, Item: req.Item})
	if !ok {
		return
	}

	resp := toTradeResponse(result)
	utils.JSONResponse(c, http.StatusCreated, resp, "trade started successfully")
	helpers.LogSuccess("StartTradeHandler", "trade started successfully", map[string]any{
		"trade_id":       resp.TradeID,
		"counterpart_id": req.CounterpartID,
	})
}

// CompleteTradeHandler handles POST /trades/:trade_id/complete
func (h *TraderHandler) CompleteTradeHandler(c *gin.Context) {
	tradeID := c.Param("trade_id")
	result, ok := h.exec(c, "CompleteTradeHandler", command.TradeComplete{TradeID: tradeID})
	if !ok {
		return
	}

	utils.JSONResponse(c, http.StatusOK, toTradeResponse(result), "trade completed successfully")
	helpers.LogSuccess("CompleteTradeHandler", "trade completed successfully", map[string]any{"trade_id": tradeID})
}

// CancelTradeHandler handles POST /trades/:trade_id/cancel
func (h *TraderHandler) CancelTradeHandler(c *gin.Context) {
	tradeID := c.Param("trade_id")
	result, ok := h.exec(c, "CancelTradeHandler", command.TradeCancel{TradeID: tradeID})
	if !ok {
		return
	}

	utils.JSONResponse(c, http.StatusOK, toTradeResponse(result), "trade cancelled successfully")
	helpers.LogSuccess("CancelTradeHandler", "trade cancelled successfully", map[string]any{"trade_id": tradeID})
}

// GetTradeHandler handles GET /trades/:trade_id
func (h *TraderHandler) GetTradeHandler(c *gin.Context) {
	result, ok := h.exec(c, "GetTradeHandler", command.TradeGet{TradeID: c.Param("trade_id")})
	if !ok {
		return
	}

	utils.JSONResponse(c, http.StatusOK, toTradeResponse(result), "trade retrieved successfully")
}

// ListOpenTradesHandler handles GET /trades
func (h *TraderHandler) ListOpenTradesHandler(c *gin.Context) {
	result, ok := h.exec(c, "ListOpenTradesHandler", command.TradeListOpen{})
	if !ok {
		return
	}

	trades, _ := result.([]model.Trade)
	resp := make([]helpers.TradeResponse, len(trades))
	for i, t := range trades {
		resp[i] = helpers.ToTradeResponse(t)
	}
	utils.JSONResponse(c, http.StatusOK, resp, "trades retrieved successfully")
}

// GetProfileHandler handles GET /profile and GET /users/:user_id/profile
func (h *TraderHandler) GetProfileHandler(c *gin.Context) {
	result, ok := h.exec(c, "GetProfileHandler", command.ProfileGet{UserID: c.Param("user_id")})
	if !ok {
		return
	}

	utils.JSONResponse(c, http.StatusOK, toProfileResponse(result), "profile retrieved successfully")
}

// UpdateProfileHandler handles PATCH /profile
func (h *TraderHandler) UpdateProfileHandler(c *gin.Context) {
	var req helpers.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateProfileHandler", err)
		return
	}

	upd := model.ProfileUpdate{Bio: req.Bio, TradeChannelID: req.TradeChannelID}
	result, ok := h.exec(c, "UpdateProfileHandler", command.ProfileUpdate{Update: upd})
	if !ok {
		return
	}

	utils.JSONResponse(c, http.StatusOK, toProfileResponse(result), "profile updated successfully")
	helpers.LogSuccess("UpdateProfileHandler", "profile updated successfully", nil)
}

// SetTierHandler handles PUT /users/:user_id/tier for the platform layer
func (h *TraderHandler) SetTierHandler(c *gin.Context) {
	var req helpers.SetTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetTierHandler", err)
		return
	}

	target := c.Param("user_id")
	result, ok := h.exec(c, "SetTierHandler", command.ProfileSetTier{UserID: target, Tier: req.Tier})
	if !ok {
		return
	}

	utils.JSONResponse(c, http.StatusOK, toProfileResponse(result), "tier updated successfully")
	helpers.LogSuccess("SetTierHandler", "tier updated successfully", map[string]any{
		"target_id": target,
		"tier":      req.Tier,
	})
}

// SearchStockHandler handles GET /search/stock?q=
func (h *TraderHandler) SearchStockHandler(c *gin.Context) {
	result, ok := h.exec(c, "SearchStockHandler", command.StockSearch{Term: c.Query("q")})
	if !ok {
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, "stock search completed successfully")
}

// SearchWishlistHandler handles GET /search/wishlist?q=
func (h *TraderHandler) SearchWishlistHandler(c *gin.Context) {
	result, ok := h.exec(c, "SearchWishlistHandler", command.WishlistSearch{Term: c.Query("q")})
	if !ok {
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, "wishlist search completed successfully")
}

// ReviewsHandler handles GET /reviews and GET /users/:user_id/reviews
func (h *TraderHandler) ReviewsHandler(c *gin.Context) {
	result, ok := h.exec(c, "ReviewsHandler", command.ReputationReviews{UserID: c.Param("user_id")})
	if !ok {
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, "reviews retrieved successfully")
}

func toTradeResponse(result any) helpers.TradeResponse {
	t, _ := result.(model.Trade)
	return helpers.ToTradeResponse(t)
}

func toProfileResponse(result any) helpers.ProfileResponse {
	p, _ := result.(model.Profile)
	return helpers.ToProfileResponse(p)
}
