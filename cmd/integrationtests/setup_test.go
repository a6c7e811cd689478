package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"trader-bot/internal/app"
	"trader-bot/internal/config"
	model "trader-bot/internal/models"
	"trader-bot/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testGuild = "guild-1"

// recordingSink keeps every delivered notification
type recordingSink struct {
	mu  sync.Mutex
	got []model.Notification
}

func (s *recordingSink) Deliver(ctx context.Context, n model.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, n)
	return nil
}

func (s *recordingSink) For(recipient string) []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Notification
	for _, n := range s.got {
		if n.Recipient == recipient {
			out = append(out, n)
		}
	}
	return out
}

// TestEnv is a wired trader on the in-memory store
type TestEnv struct {
	Router *gin.Engine
	App    *app.App
	Sink   *recordingSink
}

// Drain waits for background matching and notification delivery
func (e *TestEnv) Drain(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, e.App.Close(ctx))
}

func testConfig() config.Config {
	return config.Config{
		Env:                   "test",
		Port:                  "0",
		LogLevel:              "error",
		FuzzyThreshold:        0.6,
		RatingCooldown:        24 * time.Hour,
		LeaderboardMinRatings: 3,
		ListingLimit:          50,
		AlertQuotaFree:        1,
		AlertQuotaPlus:        5,
		AlertQuotaPro:         20,
		NotifyQueueSize:       64,
		NotifyWorkers:         2,
		StoreRetryAttempts:    3,
		StoreRetryBackoff:     time.Millisecond,
	}
}

// SetupTestRouter initializes the application with an in-memory repository for integration testing.
func SetupTestRouter(t *testing.T, tweak ...func(*config.Config)) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	for _, fn := range tweak {
		fn(&cfg)
	}

	sink := &recordingSink{}
	a, err := app.New(context.Background(), cfg, app.WithSink(sink))
	require.NoError(t, err)

	return &TestEnv{Router: a.Router, App: a, Sink: sink}
}

// ExecuteRequestAndParse executes an HTTP request as userID and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, userID, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	return ExecuteWithHeaders(t, router, userID, method, url, body, nil)
}

// ExecuteAsPlatform executes a request the platform layer issues on behalf of userID
func ExecuteAsPlatform(t *testing.T, router *gin.Engine, userID, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	return ExecuteWithHeaders(t, router, userID, method, url, body, map[string]string{server.RoleHeader: server.PlatformRole})
}

// ExecuteWithHeaders executes an HTTP request with extra headers and parses the response
func ExecuteWithHeaders(t *testing.T, router *gin.Engine, userID, method, url string, body any, headers map[string]string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(server.GuildHeader, testGuild)
	if userID != "" {
		req.Header.Set(server.UserHeader, userID)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if w.Code == 201 {
			resp = resp["data"].(map[string]any)
		}
	}

	return resp, w
}
