package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"DATABASE_URL", "KAFKA_BROKERS", "FUZZY_THRESHOLD", "RATING_COOLDOWN", "ALERT_QUOTA_FREE"} {
		t.Setenv(k, "")
	}

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", c.Port)
	require.Equal(t, 0.6, c.FuzzyThreshold)
	require.Equal(t, 24*time.Hour, c.RatingCooldown)
	require.Equal(t, 1, c.AlertQuotaFree)
	require.Equal(t, 5, c.AlertQuotaPlus)
	require.Equal(t, 20, c.AlertQuotaPro)
	require.Equal(t, "memory", c.StoreKind())
	require.Equal(t, "log", c.SinkKind())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/trader")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("RATING_COOLDOWN", "1h30m")
	t.Setenv("ALERT_QUOTA_PLUS", "7")
	t.Setenv("NOTIFY_WORKERS", "not-a-number")
	t.Setenv("FUZZY_THRESHOLD", "0.75")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "postgres", c.StoreKind())
	require.Equal(t, []string{"k1:9092", "k2:9092"}, c.KafkaBrokers)
	require.Equal(t, "kafka", c.SinkKind())
	require.Equal(t, 90*time.Minute, c.RatingCooldown)
	require.Equal(t, 7, c.AlertQuotaPlus)
	require.Equal(t, 4, c.NotifyWorkers, "invalid values fall back to the default")
	require.Equal(t, 0.75, c.FuzzyThreshold)
}

func TestLoad_RejectsThreshold(t *testing.T) {
	for _, v := range []string{"0", "-0.2", "1.5"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("FUZZY_THRESHOLD", v)
			_, err := Load()
			require.Error(t, err)
		})
	}
}
