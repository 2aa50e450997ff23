package config_test

import (
	"testing"

	"github.com/weglide/flugfeld/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "airports.csv", cfg.Snapshot.CSVPath)
	assert.Equal(t, "https://api.core.openaip.net/api/airports", cfg.OpenAIP.Endpoint)
	assert.Equal(t, 1000, cfg.OpenAIP.PageSize)
	assert.Equal(t, "https://api.weglide.org/v1/airport", cfg.WeGlide.Endpoint)
	assert.Equal(t, 1000, cfg.Nominatim.DelayMillis)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, "airports", cfg.Storage.Bucket)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("OPENAIP_API_KEY", "secret")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SNAPSHOT_CSV_PATH", "data/airports.csv")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.OpenAIP.APIKey)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "data/airports.csv", cfg.Snapshot.CSVPath)
}
