package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"trader-bot/utils"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings read from the environment
type Config struct {
	Env      string
	Port     string
	LogLevel string

	// DatabaseURL selects Postgres; empty runs on the in-memory store
	DatabaseURL string

	// KafkaBrokers selects the Kafka notification sink; empty logs notifications
	KafkaBrokers []string
	KafkaTopic   string

	FuzzyThreshold        float64
	RatingCooldown        time.Duration
	LeaderboardMinRatings int
	ListingLimit          int

	AlertQuotaFree int
	AlertQuotaPlus int
	AlertQuotaPro  int

	NotifyQueueSize int
	NotifyWorkers   int

	StoreRetryAttempts int
	StoreRetryBackoff  time.Duration
}

// Load reads .env files when present and then the process environment
func Load() (Config, error) {
	// missing files are fine
	_ = godotenv.Load(".env", ".env.local")

	c := Config{
		Env:                   getenv("APP_ENV", "development"),
		Port:                  getenv("PORT", "8080"),
		LogLevel:              getenv("LOG_LEVEL", "info"),
		DatabaseURL:           getenv("DATABASE_URL", ""),
		KafkaBrokers:          splitList(getenv("KAFKA_BROKERS", "")),
		KafkaTopic:            getenv("KAFKA_TOPIC", "trader.notifications"),
		FuzzyThreshold:        getenvFloat("FUZZY_THRESHOLD", 0.6),
		RatingCooldown:        getenvDuration("RATING_COOLDOWN", 24*time.Hour),
		LeaderboardMinRatings: getenvInt("LEADERBOARD_MIN_RATINGS", 3),
		ListingLimit:          getenvInt("LISTING_LIMIT", 50),
		AlertQuotaFree:        getenvInt("ALERT_QUOTA_FREE", 1),
		AlertQuotaPlus:        getenvInt("ALERT_QUOTA_PLUS", 5),
		AlertQuotaPro:         getenvInt("ALERT_QUOTA_PRO", 20),
		NotifyQueueSize:       getenvInt("NOTIFY_QUEUE_SIZE", 256),
		NotifyWorkers:         getenvInt("NOTIFY_WORKERS", 4),
		StoreRetryAttempts:    getenvInt("STORE_RETRY_ATTEMPTS", 3),
		StoreRetryBackoff:     getenvDuration("STORE_RETRY_BACKOFF", 50*time.Millisecond),
	}

	if c.FuzzyThreshold <= 0 || c.FuzzyThreshold > 1 {
		return Config{}, fmt.Errorf("config: FUZZY_THRESHOLD must be in (0,1], got %v", c.FuzzyThreshold)
	}

	utils.Info("config loaded", map[string]any{
		"env":      c.Env,
		"port":     c.Port,
		"store":    c.StoreKind(),
		"notifier": c.SinkKind(),
	})
	return c, nil
}

// StoreKind names the configured store
func (c Config) StoreKind() string {
	if c.DatabaseURL == "" {
		return "memory"
	}
	return "postgres"
}

// SinkKind names the configured notification sink
func (c Config) SinkKind() string {
	if len(c.KafkaBrokers) == 0 {
		return "log"
	}
	return "kafka"
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// numeric getters keep the default when the value does not parse

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		utils.Warn("invalid integer in environment, using default", map[string]any{"key": k, "value": v, "default": def})
		return def
	}
	return n
}

func getenvFloat(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		utils.Warn("invalid number in environment, using default", map[string]any{"key": k, "value": v, "default": def})
		return def
	}
	return f
}

func getenvDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		utils.Warn("invalid duration in environment, using default", map[string]any{"key": k, "value": v, "default": def.String()})
		return def
	}
	return d
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
