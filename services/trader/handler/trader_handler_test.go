package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"trader-bot/internal/command"
	model "trader-bot/internal/models"
	"trader-bot/internal/tradererrors"
	"trader-bot/services/trader/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

var testCaller = model.Caller{GuildID: "g1", UserID: "alice"}

func newTestRouter(h *TraderHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		helpers.SetCaller(c, testCaller)
		c.Next()
	})
	router.POST("/stock", h.AddStockHandler)
	router.PATCH("/stock", h.ChangeStockHandler)
	router.DELETE("/stock/:item", h.RemoveStockHandler)
	router.GET("/stock", h.ViewStockHandler)
	router.POST("/alerts", h.AddAlertHandler)
	router.POST("/ratings", h.RateHandler)
	router.GET("/leaderboard", h.LeaderboardHandler)
	router.POST("/trades", h.StartTradeHandler)
	router.POST("/trades/:trade_id/complete", h.CompleteTradeHandler)
	router.GET("/trades", h.ListOpenTradesHandler)
	router.PATCH("/profile", h.UpdateProfileHandler)
	router.PUT("/users/:user_id/tier", h.SetTierHandler)
	router.GET("/search/stock", h.SearchStockHandler)
	router.GET("/search/wishlist", h.SearchWishlistHandler)
	router.GET("/users/:user_id/reviews", h.ReviewsHandler)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

// Test AddStockHandler
func TestAddStockHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDispatcher := NewMockDispatcher(ctrl)
	router := newTestRouter(NewTraderHandler(mockDispatcher))

	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "success_new_item",
			requestBody: helpers.AddStockRequest{Item: "Widget", Quantity: 3},
			mockSetup: func() {
				mockDispatcher.EXPECT().
					Dispatch(gomock.Any(), testCaller, command.StockAdd{Item: "Widget", Quantity: 3}).
					Return(model.StockItem{ID: "01HX", GuildID: "g1", OwnerID: "alice", Name: "Widget", Key: "widget", Quantity: 3, CreatedAt: now}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "stock added successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "Widget", data["name"])
				require.Equal(t, 3.0, data["quantity"])
				require.NotContains(t, data, "key")
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "missing_item",
			requestBody:    helpers.AddStockRequest{Quantity: 2},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "zero_quantity",
			requestBody:    map[string]any{"item": "Widget", "quantity": 0},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "quantity_above_max",
			requestBody:    map[string]any{"item": "Widget", "quantity": 2147483648},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "sum_above_max",
			requestBody: helpers.AddStockRequest{Item: "Coin", Quantity: 5},
			mockSetup: func() {
				mockDispatcher.EXPECT().
					Dispatch(gomock.Any(), testCaller, command.StockAdd{Item: "Coin", Quantity: 5}).
					Return(nil, fmt.Errorf("add stock: %w", tradererrors.ErrInvalidQuantity))
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request",
		},
		{
			name:        "listing_limit",
			requestBody: helpers.AddStockRequest{Item: "Gem", Quantity: 1},
			mockSetup: func() {
				mockDispatcher.EXPECT().
					Dispatch(gomock.Any(), testCaller, command.StockAdd{Item: "Gem", Quantity: 1}).
					Return(nil, tradererrors.ErrListingLimit)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request",
		},
		{
			name:        "store_unavailable",
			requestBody: helpers.AddStockRequest{Item: "Rope", Quantity: 1},
			mockSetup: func() {
				mockDispatcher.EXPECT().
					Dispatch(gomock.Any(), testCaller, command.StockAdd{Item: "Rope", Quantity: 1}).
					Return(nil, tradererrors.Unavailable("add stock", errors.New("conn refused")))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedMsg:    "store temporarily unavailable",
		},
		{
			name:        "generic_error",
			requestBody: helpers.AddStockRequest{Item: "Lamp", Quantity: 1},
			mockSetup: func() {
				mockDispatcher.EXPECT().
					Dispatch(gomock.Any(), testCaller, command.StockAdd{Item: "Lamp", Quantity: 1}).
					Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.mockSetup()
			w, resp := doRequest(t, router, http.MethodPost, "/stock", tc.requestBody)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil {
				tc.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}

// Test ChangeStockHandler and RemoveStockHandler
func TestChangeAndRemoveStockHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDispatcher := NewMockDispatcher(ctrl)
	router := newTestRouter(NewTraderHandler(mockDispatcher))

	tests := []struct {
		name           string
		method         string
		path           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "change_to_zero",
			method:      http.MethodPatch,
			path:        "/stock",
			requestBody: map[string]any{"item": "widget", "quantity": 0},
			mockSetup: func() {
				mockDispatcher.EXPECT().
					Dispatch(gomock.Any(), testCaller, command.StockChange{Item: "widget", Quantity: 0}).
					Return(model.StockItem{Name: "widget"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "stock changed successfully",
		},
		{
			name:           "change_missing_quantity",
			method:         http.MethodPatch,
			path:           "/stock",
			requestBody:    map[string]any{"item": "widget"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "change_negative_quantity",
			method:         http.MethodPatch,
			path:           "/stock",
			requestBody:    map[string]any{"item": "widget", "quantity": -1},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "change_not_found",
			method:      http.MethodPatch,
			path:        "/stock",
			requestBody: map[string]any{"item": "dragon", "quantity": 4},
			mockSetup: func() {
				mockDispatcher.EXPECT().
					Dispatch(gomock.Any(), testCaller, command.StockChange{Item: "dragon", Quantity: 4}).
					Return(nil, fmt.Errorf("service: %w", tradererrors.ErrItemNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "item not found",
		},
		{
			name:   "remove_with_spaces",
			method: http.MethodDelete,
			path:   "/stock/" + url.PathEscape("steel sword"),
			mockSetup: func() {
				mockDispatcher.EXPECT().
					Dispatch(gomock.Any(), testCaller, command.StockRemove{Item: "steel sword"}).
					Return(model.StockItem{Name: "Steel Sword"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "stock removed successfully",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.mockSetup()
			w, resp := doRequest(t, router, tc.method, tc.path, tc.requestBody)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// Test ViewStockHandler
func TestViewStockHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDispatcher := NewMockDispatcher(ctrl)
	router := newTestRouter(NewTraderHandler(mockDispatcher))

	mockDispatcher.EXPECT().
		Dispatch(gomock.Any(), testCaller, command.StockView{OwnerID: "bob"}).
		Return([]model.StockItem{{Name: "Rope", Quantity: 2}, {Name: "Torch", Quantity: 1}}, nil)

	w, resp := doRequest(t, router, http.MethodGet, "/stock?owner=bob", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].([]any)
	require.Len(t, data, 2)
	require.Equal(t, "Rope", data[0].(map[string]any)["name"])
}

// Test AddAlertHandler and RateHandler error details
func TestErrorDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDispatcher := NewMockDispatcher(ctrl)
	router := newTestRouter(NewTraderHandler(mockDispatcher))

	t.Run("quota_exceeded", func(t *testing.T) {
		mockDispatcher.EXPECT().
			Dispatch(gomock.Any(), testCaller, command.AlertAdd{Item: "shield"}).
			Return(nil, fmt.Errorf("service: %w", &tradererrors.QuotaError{Tier: "free", Quota: 1}))

		w, resp := doRequest(t, router, http.MethodPost, "/alerts", helpers.AddAlertRequest{Item: "shield"})
		require.Equal(t, http.StatusConflict, w.Code)
		require.Equal(t, "alert quota exceeded", resp["message"])
		details := resp["details"].(map[string]any)
		require.Equal(t, 1.0, details["quota"])
		require.Equal(t, "free", details["tier"])
	})

	t.Run("cooldown_active", func(t *testing.T) {
		mockDispatcher.EXPECT().
			Dispatch(gomock.Any(), testCaller, command.ReputationRate{RateeID: "carol", Score: 5}).
			Return(nil, &tradererrors.CooldownError{Remaining: 90*time.Minute + 500*time.Millisecond})

		w, resp := doRequest(t, router, http.MethodPost, "/ratings", helpers.RateRequest{RateeID: "carol", Score: 5})
		require.Equal(t, http.StatusTooManyRequests, w.Code)
		require.Equal(t, "5401", w.Header().Get("Retry-After"))
		details := resp["details"].(map[string]any)
		require.Equal(t, 5401.0, details["retry_after_seconds"])
	})

	t.Run("self_rating", func(t *testing.T) {
		mockDispatcher.EXPECT().
			Dispatch(gomock.Any(), testCaller, command.ReputationRate{RateeID: "alice", Score: 3}).
			Return(nil, tradererrors.ErrSelfRating)

		w, resp := doRequest(t, router, http.MethodPost, "/ratings", helpers.RateRequest{RateeID: "alice", Score: 3})
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.NotContains(t, resp, "details")
	})
}

// Test trade handlers
func TestTradeHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDispatcher := NewMockDispatcher(ctrl)
	router := newTestRouter(NewTraderHandler(mockDispatcher))

	created := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)
	closed := created.Add(time.Hour)

	mockDispatcher.EXPECT().
		Dispatch(gomock.Any(), testCaller, command.TradeStart{CounterpartID: "bob", Item: "Widget"}).
		Return(model.Trade{ID: "T1", PartyA: "alice", PartyB: "bob", Item: "Widget", State: model.TradeStarted, CreatedAt: created}, nil)

	w, resp := doRequest(t, router, http.MethodPost, "/trades", helpers.StartTradeRequest{CounterpartID: "bob", Item: "Widget"})
	require.Equal(t, http.StatusCreated, w.Code)
	data := resp["data"].(map[string]any)
	require.Equal(t, "T1", data["trade_id"])
	require.Equal(t, "started", data["state"])
	require.Equal(t, "2026-04-02T10:00:00Z", data["created_at"])
	require.NotContains(t, data, "closed_at")

	mockDispatcher.EXPECT().
		Dispatch(gomock.Any(), testCaller, command.TradeComplete{TradeID: "T1"}).
		Return(model.Trade{ID: "T1", State: model.TradeCompleted, CreatedAt: created, ClosedAt: &closed}, nil)

	w, resp = doRequest(t, router, http.MethodPost, "/trades/T1/complete", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "2026-04-02T11:00:00Z", resp["data"].(map[string]any)["closed_at"])

	mockDispatcher.EXPECT().
		Dispatch(gomock.Any(), testCaller, command.TradeComplete{TradeID: "T1"}).
		Return(nil, fmt.Errorf("service: %w", tradererrors.ErrTradeTerminal))

	w, _ = doRequest(t, router, http.MethodPost, "/trades/T1/complete", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	mockDispatcher.EXPECT().
		Dispatch(gomock.Any(), testCaller, command.TradeListOpen{}).
		Return([]model.Trade{}, nil)

	w, resp = doRequest(t, router, http.MethodGet, "/trades", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, resp["data"])
}

// Test LeaderboardHandler
func TestLeaderboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDispatcher := NewMockDispatcher(ctrl)
	router := newTestRouter(NewTraderHandler(mockDispatcher))

	mockDispatcher.EXPECT().
		Dispatch(gomock.Any(), testCaller, command.ReputationLeaderboard{Limit: 3}).
		Return([]model.LeaderboardEntry{{Rank: 1, UserID: "carol", Mean: 4.5, Count: 4}}, nil)

	w, resp := doRequest(t, router, http.MethodGet, "/leaderboard?limit=3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["data"], 1)

	w, _ = doRequest(t, router, http.MethodGet, "/leaderboard?limit=ten", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

// Test UpdateProfileHandler
func TestUpdateProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDispatcher := NewMockDispatcher(ctrl)
	router := newTestRouter(NewTraderHandler(mockDispatcher))

	mockDispatcher.EXPECT().
		Dispatch(gomock.Any(), testCaller, gomock.AssignableToTypeOf(command.ProfileUpdate{})).
		DoAndReturn(func(_ context.Context, _ model.Caller, cmd command.Command) (any, error) {
			upd := cmd.(command.ProfileUpdate).Update
			require.NotNil(t, upd.Bio)
			require.Equal(t, "gems", *upd.Bio)
			require.Nil(t, upd.TradeChannelID)
			return model.Profile{UserID: "alice", Bio: "gems", Tier: model.TierFree, ResponseTotal: 19, ResponseCount: 2}, nil
		})

	// a tier in the self-edit body is ignored
	w, resp := doRequest(t, router, http.MethodPatch, "/profile", map[string]any{"bio": "gems", "tier": "pro"})
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]any)
	require.Equal(t, "free", data["tier"])
	require.Equal(t, 9.5, data["average_response"])
}

// Test SetTierHandler
func TestSetTierHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDispatcher := NewMockDispatcher(ctrl)
	router := newTestRouter(NewTraderHandler(mockDispatcher))

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
	}{
		{
			name:        "grants_tier",
			requestBody: helpers.SetTierRequest{Tier: model.TierPro},
			mockSetup: func() {
				mockDispatcher.EXPECT().
					Dispatch(gomock.Any(), testCaller, command.ProfileSetTier{UserID: "bob", Tier: model.TierPro}).
					Return(model.Profile{UserID: "bob", Tier: model.TierPro}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing_tier",
			requestBody:    map[string]any{},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "unknown_tier",
			requestBody: helpers.SetTierRequest{Tier: "diamond"},
			mockSetup: func() {
				mockDispatcher.EXPECT().
					Dispatch(gomock.Any(), testCaller, command.ProfileSetTier{UserID: "bob", Tier: "diamond"}).
					Return(nil, tradererrors.ErrInvalidTier)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.mockSetup()
			w, resp := doRequest(t, router, http.MethodPut, "/users/bob/tier", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedStatus == http.StatusOK {
				data := resp["data"].(map[string]any)
				require.Equal(t, "pro", data["tier"])
				require.Equal(t, "bob", data["user_id"])
			}
		})
	}
}

// Test SearchStockHandler, SearchWishlistHandler and ReviewsHandler
func TestSearchAndReviewHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDispatcher := NewMockDispatcher(ctrl)
	router := newTestRouter(NewTraderHandler(mockDispatcher))

	mockDispatcher.EXPECT().
		Dispatch(gomock.Any(), testCaller, command.StockSearch{Term: "iron sword"}).
		Return([]model.SearchHit{{OwnerID: "bob", Name: "Iron Sword", Quantity: 2, Score: 1}}, nil)

	w, resp := doRequest(t, router, http.MethodGet, "/search/stock?q="+url.QueryEscape("iron sword"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	hits := resp["data"].([]any)
	require.Len(t, hits, 1)
	require.Equal(t, "bob", hits[0].(map[string]any)["owner_id"])
	require.Equal(t, 2.0, hits[0].(map[string]any)["quantity"])

	mockDispatcher.EXPECT().
		Dispatch(gomock.Any(), testCaller, command.WishlistSearch{}).
		Return(nil, fmt.Errorf("command: wishlist.search: %w", tradererrors.ErrEmptyName))

	w, _ = doRequest(t, router, http.MethodGet, "/search/wishlist", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	mockDispatcher.EXPECT().
		Dispatch(gomock.Any(), testCaller, command.ReputationReviews{UserID: "carol"}).
		Return([]model.Rating{{RaterID: "bob", RateeID: "carol", Score: 5, Review: "fast and fair"}}, nil)

	w, resp = doRequest(t, router, http.MethodGet, "/users/carol/reviews", nil)
	require.Equal(t, http.StatusOK, w.Code)
	reviews := resp["data"].([]any)
	require.Len(t, reviews, 1)
	require.Equal(t, "fast and fair", reviews[0].(map[string]any)["review"])
}
