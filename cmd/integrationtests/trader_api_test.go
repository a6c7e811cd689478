package integrationtests

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"trader-bot/internal/config"
	model "trader-bot/internal/models"
	"trader-bot/services/trader/helpers"

	"github.com/stretchr/testify/require"
)

// Stock lifecycle: add, accumulate, change, zero out
func TestStockLifecycle(t *testing.T) {
	env := SetupTestRouter(t)
	router := env.Router

	resp, w := ExecuteRequestAndParse(t, router, "alice", http.MethodPost, "/stock", helpers.AddStockRequest{Item: "widget", Quantity: 3})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, 3.0, resp["quantity"])
	require.NotEmpty(t, resp["id"])

	five, zero := 5, 0
	resp, w = ExecuteRequestAndParse(t, router, "alice", http.MethodPatch, "/stock", helpers.ChangeStockRequest{Item: "widget", Quantity: &five})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 5.0, resp["data"].(map[string]any)["quantity"])

	resp, w = ExecuteRequestAndParse(t, router, "alice", http.MethodGet, "/stock", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := resp["data"].([]any)
	require.Len(t, items, 1)
	require.Equal(t, "widget", items[0].(map[string]any)["name"])
	require.Equal(t, 5.0, items[0].(map[string]any)["quantity"])

	_, w = ExecuteRequestAndParse(t, router, "alice", http.MethodPatch, "/stock", helpers.ChangeStockRequest{Item: "widget", Quantity: &zero})
	require.Equal(t, http.StatusOK, w.Code)

	resp, w = ExecuteRequestAndParse(t, router, "alice", http.MethodGet, "/stock", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, resp["data"])

	env.Drain(t)
}

// Fuzzy resolution through the HTTP surface
func TestStockFuzzyRemove(t *testing.T) {
	env := SetupTestRouter(t)
	router := env.Router

	for _, req := range []helpers.AddStockRequest{
		{Item: "Steel Sword", Quantity: 1},
		{Item: "Iron Shield", Quantity: 2},
	} {
		_, w := ExecuteRequestAndParse(t, router, "alice", http.MethodPost, "/stock", req)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantName   string
	}{
		{name: "Typo_Resolves", query: "steel swrd", wantStatus: http.StatusOK, wantName: "Steel Sword"},
		{name: "Already_Removed", query: "steel sword", wantStatus: http.StatusNotFound},
		{name: "Below_Threshold", query: "dragon egg", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, w := ExecuteRequestAndParse(t, router, "alice", http.MethodDelete, "/stock/"+url.PathEscape(tt.query), nil)
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				require.Equal(t, tt.wantName, resp["data"].(map[string]any)["name"])
			} else {
				require.Equal(t, "item not found", resp["message"])
			}
		})
	}

	resp, _ := ExecuteRequestAndParse(t, router, "alice", http.MethodGet, "/stock", nil)
	require.Len(t, resp["data"], 1)

	env.Drain(t)
}

// Rating cooldown and aggregate
func TestRatingCooldown(t *testing.T) {
	env := SetupTestRouter(t, func(c *config.Config) { c.RatingCooldown = 100 * time.Millisecond })
	router := env.Router

	resp, w := ExecuteRequestAndParse(t, router, "bob", http.MethodPost, "/ratings", helpers.RateRequest{RateeID: "carol", Score: 4})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, 4.0, resp["mean"])

	resp, w = ExecuteRequestAndParse(t, router, "bob", http.MethodPost, "/ratings", helpers.RateRequest{RateeID: "carol", Score: 5})
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.NotEmpty(t, w.Header().Get("Retry-After"))
	require.Contains(t, resp["details"], "retry_after_seconds")

	time.Sleep(150 * time.Millisecond)

	resp, w = ExecuteRequestAndParse(t, router, "bob", http.MethodPost, "/ratings", helpers.RateRequest{RateeID: "carol", Score: 5})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, 4.5, resp["mean"])
	require.Equal(t, 2.0, resp["count"])

	resp, w = ExecuteRequestAndParse(t, router, "alice", http.MethodGet, "/users/carol/reputation", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]any)
	require.Equal(t, 4.5, data["mean"])
	require.Equal(t, 2.0, data["count"])

	env.Drain(t)
}

func TestRatingValidation(t *testing.T) {
	env := SetupTestRouter(t)
	router := env.Router

	tests := []struct {
		name       string
		request    any
		wantStatus int
	}{
		{name: "Self_Rating", request: helpers.RateRequest{RateeID: "bob", Score: 5}, wantStatus: http.StatusBadRequest},
		{name: "Score_Too_High", request: helpers.RateRequest{RateeID: "carol", Score: 6}, wantStatus: http.StatusBadRequest},
		{name: "Missing_Ratee", request: map[string]any{"score": 3}, wantStatus: http.StatusBadRequest},
		{name: "Invalid_JSON", request: []byte("{ratee_id: carol}"), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, w := ExecuteRequestAndParse(t, router, "bob", http.MethodPost, "/ratings", tt.request)
			require.Equal(t, tt.wantStatus, w.Code)
		})
	}

	env.Drain(t)
}

func TestLeaderboard(t *testing.T) {
	env := SetupTestRouter(t)
	router := env.Router

	seed := []struct {
		rater, ratee string
		score        int
	}{
		{"u1", "carol", 5}, {"u2", "carol", 4}, {"u3", "carol", 3},
		{"u1", "dave", 5}, {"u2", "dave", 5},
	}
	for _, s := range seed {
		_, w := ExecuteRequestAndParse(t, router, s.rater, http.MethodPost, "/ratings", helpers.RateRequest{RateeID: s.ratee, Score: s.score})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	resp, w := ExecuteRequestAndParse(t, router, "alice", http.MethodGet, "/leaderboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	board := resp["data"].([]any)
	require.Len(t, board, 1, "dave has too few ratings")
	entry := board[0].(map[string]any)
	require.Equal(t, "carol", entry["user_id"])
	require.Equal(t, 1.0, entry["rank"])
	require.Equal(t, 4.0, entry["mean"])

	env.Drain(t)
}

// Alert quota follows the current tier
func TestAlertQuota(t *testing.T) {
	env := SetupTestRouter(t)
	router := env.Router

	_, w := ExecuteRequestAndParse(t, router, "dave", http.MethodPost, "/alerts", helpers.AddAlertRequest{Item: "sword"})
	require.Equal(t, http.StatusCreated, w.Code)

	resp, w := ExecuteRequestAndParse(t, router, "dave", http.MethodPost, "/alerts", helpers.AddAlertRequest{Item: "shield"})
	require.Equal(t, http.StatusConflict, w.Code)
	details := resp["details"].(map[string]any)
	require.Equal(t, 1.0, details["quota"])
	require.Equal(t, "free", details["tier"])

	// members cannot grant themselves a tier
	resp, w = ExecuteRequestAndParse(t, router, "dave", http.MethodPatch, "/profile", map[string]any{"tier": "plus"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "free", resp["data"].(map[string]any)["tier"])

	_, w = ExecuteRequestAndParse(t, router, "dave", http.MethodPut, "/users/dave/tier", helpers.SetTierRequest{Tier: model.TierPlus})
	require.Equal(t, http.StatusForbidden, w.Code)

	_, w = ExecuteRequestAndParse(t, router, "dave", http.MethodPost, "/alerts", helpers.AddAlertRequest{Item: "shield"})
	require.Equal(t, http.StatusConflict, w.Code)

	resp, w = ExecuteAsPlatform(t, router, "bot", http.MethodPut, "/users/dave/tier", helpers.SetTierRequest{Tier: model.TierPlus})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "plus", resp["data"].(map[string]any)["tier"])

	_, w = ExecuteRequestAndParse(t, router, "dave", http.MethodPost, "/alerts", helpers.AddAlertRequest{Item: "shield"})
	require.Equal(t, http.StatusCreated, w.Code)

	resp, w = ExecuteRequestAndParse(t, router, "dave", http.MethodGet, "/alerts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["data"], 2)

	env.Drain(t)
}

// Quantities past the 32-bit bound are rejected instead of wrapping
func TestStockQuantityBound(t *testing.T) {
	env := SetupTestRouter(t)
	router := env.Router

	_, w := ExecuteRequestAndParse(t, router, "alice", http.MethodPost, "/stock", helpers.AddStockRequest{Item: "Gold Coin", Quantity: model.MaxQuantity})
	require.Equal(t, http.StatusCreated, w.Code)

	resp, w := ExecuteRequestAndParse(t, router, "alice", http.MethodPost, "/stock", helpers.AddStockRequest{Item: "gold coin", Quantity: 1})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, resp["error"], "invalid quantity")

	_, w = ExecuteRequestAndParse(t, router, "alice", http.MethodPost, "/stock", map[string]any{"item": "Silver Coin", "quantity": int64(model.MaxQuantity) + 1})
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp, w = ExecuteRequestAndParse(t, router, "alice", http.MethodGet, "/stock", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := resp["data"].([]any)
	require.Len(t, items, 1)
	require.Equal(t, float64(model.MaxQuantity), items[0].(map[string]any)["quantity"])

	env.Drain(t)
}

// Community search finds holders and seekers across the guild
func TestCommunitySearch(t *testing.T) {
	env := SetupTestRouter(t)
	router := env.Router

	for _, seed := range []struct {
		user string
		item string
	}{
		{"bob", "Iron Sword"},
		{"carol", "Sword"},
		{"dave", "Shield"},
	} {
		_, w := ExecuteRequestAndParse(t, router, seed.user, http.MethodPost, "/stock", helpers.AddStockRequest{Item: seed.item, Quantity: 1})
		require.Equal(t, http.StatusCreated, w.Code)
	}
	_, w := ExecuteRequestAndParse(t, router, "erin", http.MethodPost, "/wishlist", helpers.AddWishlistRequest{Item: "swords"})
	require.Equal(t, http.StatusCreated, w.Code)

	resp, w := ExecuteRequestAndParse(t, router, "alice", http.MethodGet, "/search/stock?q=sword", nil)
	require.Equal(t, http.StatusOK, w.Code)
	hits := resp["data"].([]any)
	require.Len(t, hits, 2)
	require.Equal(t, "carol", hits[0].(map[string]any)["owner_id"])
	require.Equal(t, "bob", hits[1].(map[string]any)["owner_id"])

	resp, w = ExecuteRequestAndParse(t, router, "alice", http.MethodGet, "/search/wishlist?q=sword", nil)
	require.Equal(t, http.StatusOK, w.Code)
	hits = resp["data"].([]any)
	require.Len(t, hits, 1)
	require.Equal(t, "erin", hits[0].(map[string]any)["owner_id"])

	resp, w = ExecuteRequestAndParse(t, router, "alice", http.MethodGet, "/search/stock?q=dragon+egg", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, resp["data"])

	_, w = ExecuteRequestAndParse(t, router, "alice", http.MethodGet, "/search/stock", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	env.Drain(t)
}

// Written reviews ride along with ratings
func TestTradeReviews(t *testing.T) {
	env := SetupTestRouter(t)
	router := env.Router

	resp, w := ExecuteRequestAndParse(t, router, "bob", http.MethodPost, "/ratings", helpers.RateRequest{RateeID: "carol", Score: 5, Review: "fast and fair"})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, 1.0, resp["count"])

	_, w = ExecuteRequestAndParse(t, router, "dave", http.MethodPost, "/ratings", helpers.RateRequest{RateeID: "carol", Score: 4})
	require.Equal(t, http.StatusCreated, w.Code)

	long := make([]byte, 301)
	for i := range long {
		long[i] = 'x'
	}
	_, w = ExecuteRequestAndParse(t, router, "erin", http.MethodPost, "/ratings", helpers.RateRequest{RateeID: "carol", Score: 4, Review: string(long)})
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp, w = ExecuteRequestAndParse(t, router, "alice", http.MethodGet, "/users/carol/reviews", nil)
	require.Equal(t, http.StatusOK, w.Code)
	reviews := resp["data"].([]any)
	require.Len(t, reviews, 1)
	require.Equal(t, "fast and fair", reviews[0].(map[string]any)["review"])
	require.Equal(t, "bob", reviews[0].(map[string]any)["rater_id"])

	resp, w = ExecuteRequestAndParse(t, router, "carol", http.MethodGet, "/reviews", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["data"], 1)

	env.Drain(t)
}

// Wishlist entries are notified once when matching stock appears
func TestWishlistMatchNotification(t *testing.T) {
	env := SetupTestRouter(t)
	router := env.Router

	_, w := ExecuteRequestAndParse(t, router, "eve", http.MethodPost, "/wishlist", helpers.AddWishlistRequest{Item: "lantern"})
	require.Equal(t, http.StatusCreated, w.Code)

	_, w = ExecuteRequestAndParse(t, router, "frank", http.MethodPost, "/stock", helpers.AddStockRequest{Item: "lantern", Quantity: 1})
	require.Equal(t, http.StatusCreated, w.Code)

	env.Drain(t)

	got := env.Sink.For("eve")
	require.Len(t, got, 1)
	require.Equal(t, model.KindAlertMatch, got[0].Kind)
	require.Equal(t, "frank", got[0].Payload["seller_id"])
	require.Empty(t, env.Sink.For("frank"))
}

func TestTradeLifecycle(t *testing.T) {
	env := SetupTestRouter(t)
	router := env.Router

	resp, w := ExecuteRequestAndParse(t, router, "alice", http.MethodPost, "/trades", helpers.StartTradeRequest{CounterpartID: "bob", Item: "widget"})
	require.Equal(t, http.StatusCreated, w.Code)
	tradeID := resp["trade_id"].(string)
	require.Equal(t, "started", resp["state"])
	_, err := time.Parse(time.RFC3339, resp["created_at"].(string))
	require.NoError(t, err)

	resp, w = ExecuteRequestAndParse(t, router, "bob", http.MethodGet, "/trades", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["data"], 1)

	tests := []struct {
		name       string
		user       string
		path       string
		wantStatus int
		wantState  string
	}{
		{name: "Outsider_Cannot_Complete", user: "carol", path: "/trades/" + tradeID + "/complete", wantStatus: http.StatusBadRequest},
		{name: "Unknown_Trade", user: "bob", path: "/trades/nope/complete", wantStatus: http.StatusNotFound},
		{name: "Counterpart_Completes", user: "bob", path: "/trades/" + tradeID + "/complete", wantStatus: http.StatusOK, wantState: "completed"},
		{name: "Terminal_Cannot_Cancel", user: "alice", path: "/trades/" + tradeID + "/cancel", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, w := ExecuteRequestAndParse(t, router, tt.user, http.MethodPost, tt.path, nil)
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantState != "" {
				data := resp["data"].(map[string]any)
				require.Equal(t, tt.wantState, data["state"])
				require.NotEmpty(t, data["closed_at"])
			}
		})
	}

	resp, w = ExecuteRequestAndParse(t, router, "carol", http.MethodGet, "/users/alice/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1.0, resp["data"].(map[string]any)["response_count"])

	resp, _ = ExecuteRequestAndParse(t, router, "alice", http.MethodGet, "/trades", nil)
	require.Empty(t, resp["data"])

	env.Drain(t)

	require.Len(t, env.Sink.For("bob"), 1)
	require.Len(t, env.Sink.For("alice"), 1)
	require.Equal(t, model.KindTradeStateChange, env.Sink.For("alice")[0].Kind)
}

func TestCallerRequired(t *testing.T) {
	env := SetupTestRouter(t)

	resp, w := ExecuteRequestAndParse(t, env.Router, "", http.MethodGet, "/stock", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "caller identity required", resp["message"])

	_, w = ExecuteRequestAndParse(t, env.Router, "", http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)

	env.Drain(t)
}
