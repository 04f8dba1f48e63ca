package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"STATE_TABLE", "STATE_TTL", "PARAM_PREFIX", "CONNECTOR_TIMEOUT", "PORT", "LOG_LEVEL", "ENV"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	require.Equal(t, 720*time.Hour, cfg.StateTTL)
	require.Equal(t, 10*time.Second, cfg.ConnectorTimeout)
	require.Equal(t, "3978", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.False(t, cfg.Development())
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("STATE_TABLE", "smartbot-state")
	t.Setenv("PARAM_PREFIX", "/smartbot/prod")
	t.Setenv("STATE_TTL", "48h")
	t.Setenv("CONNECTOR_TIMEOUT", "3s")
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ENV", "local")

	cfg := Load()
	require.Equal(t, "smartbot-state", cfg.StateTable)
	require.Equal(t, "/smartbot/prod", cfg.ParamPrefix)
	require.Equal(t, 48*time.Hour, cfg.StateTTL)
	require.Equal(t, 3*time.Second, cfg.ConnectorTimeout)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.True(t, cfg.Development())
	require.NoError(t, cfg.Validate())
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("STATE_TTL", "forever")
	t.Setenv("CONNECTOR_TIMEOUT", "-1s")

	cfg := Load()
	require.Equal(t, 720*time.Hour, cfg.StateTTL)
	require.Equal(t, 10*time.Second, cfg.ConnectorTimeout)
}

func TestValidate_ReportsEveryMissingSetting(t *testing.T) {
	clearEnv(t)

	err := Load().Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "STATE_TABLE")
	require.Contains(t, err.Error(), "PARAM_PREFIX")
}
