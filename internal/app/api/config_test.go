package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/client"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENVIRONMENT", "POSTGRES_DSN", "TEMPORAL_ADDRESS", "TEMPORAL_NAMESPACE", "TEMPORAL_DISABLED"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "local", cfg.Environment)
	assert.Empty(t, cfg.PostgresDSN)
	assert.Equal(t, client.DefaultHostPort, cfg.TemporalAddress)
	assert.Equal(t, client.DefaultNamespace, cfg.TemporalNamespace)
	assert.False(t, cfg.TemporalDisabled)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "staging")
	t.Setenv("POSTGRES_DSN", " postgres://orders@db/orders ")
	t.Setenv("TEMPORAL_ADDRESS", "temporal:7233")
	t.Setenv("TEMPORAL_NAMESPACE", "orders")
	t.Setenv("TEMPORAL_DISABLED", "TRUE")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "postgres://orders@db/orders", cfg.PostgresDSN)
	assert.Equal(t, "temporal:7233", cfg.TemporalAddress)
	assert.Equal(t, "orders", cfg.TemporalNamespace)
	assert.True(t, cfg.TemporalDisabled)
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	for _, port := range []string{"http", "0", "70000"} {
		t.Setenv("PORT", port)
		_, err := LoadConfig()
		require.Error(t, err, port)
	}
}
