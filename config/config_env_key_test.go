package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"redemption": map[string]any{
			"operationTimeout": "15s",
			"lockTTL":          "30s",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "REDEMPTION_OPERATIONTIMEOUT", want: "redemption.operationTimeout"},
		{envKey: "REDEMPTION_LOCKTTL", want: "redemption.lockTTL"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{
		Realtime: &RealtimeConfig{Enabled: true},
		Metrics:  &MetricsConfig{Enabled: true},
	}

	cfg.applyDefaults()

	assert.Equal(t, PersistenceDriverPostgres, cfg.Persistence.Driver)
	assert.Equal(t, defaultOperationTimeout, cfg.Redemption.OperationTimeout)
	assert.Equal(t, defaultLockTTL, cfg.Redemption.LockTTL)
	assert.Equal(t, defaultLockRetryInterval, cfg.Redemption.LockRetryInterval)
	assert.Equal(t, time.Duration(0), cfg.Redemption.Cooldown)
	assert.Equal(t, defaultRealtimeChannel, cfg.Realtime.Channel)
	assert.Equal(t, defaultMetricsPath, cfg.Metrics.Path)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Persistence: &PersistenceConfig{Driver: PersistenceDriverMemory},
		Redemption: &RedemptionConfig{
			OperationTimeout: 3 * time.Second,
			Cooldown:         2 * time.Second,
		},
	}

	cfg.applyDefaults()

	assert.Equal(t, PersistenceDriverMemory, cfg.Persistence.Driver)
	assert.Equal(t, 3*time.Second, cfg.Redemption.OperationTimeout)
	assert.Equal(t, 2*time.Second, cfg.Redemption.Cooldown)
}

func TestRedemptionConfig_Location(t *testing.T) {
	var nilCfg *RedemptionConfig
	loc, err := nilCfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	loc, err = (&RedemptionConfig{Timezone: "Asia/Taipei"}).Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Taipei", loc.String())

	_, err = (&RedemptionConfig{Timezone: "Mars/Olympus"}).Location()
	assert.Error(t, err)
}
