package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields keep the earlier value.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{
		Adapter: Adapter{GRPCAddress: "override:1"},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "override:1", cfg.Adapter.GRPCAddress)
	assert.Equal(t, DefaultKeepAliveTime, cfg.Adapter.KeepAliveTime)
	assert.Equal(t, DefaultCooldown, cfg.Session.Cooldown)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFileFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"session": map[string]any{"cooldown": "3s"},
	})

	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.Session.Cooldown)
}

func TestWithJSON_MissingFileIsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/missing.json"})

	_, err := b.withJSON().build()
	assert.Error(t, err)
}

// ── GetClientConfig ───────────────────────────────────────────────────────────

func TestGetClientConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, DefaultGRPCAddress, cfg.Adapter.GRPCAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultKeepAliveTime, cfg.Adapter.KeepAliveTime)
	assert.Equal(t, DefaultKeepAliveTimeout, cfg.Adapter.KeepAliveTimeout)
	assert.Equal(t, DefaultCooldown, cfg.Session.Cooldown)
	assert.Empty(t, cfg.Session.HistoryFile)
	assert.Equal(t, DefaultLogFile, cfg.Log.File)
}

func TestGetClientConfig_PriorityEnvFlagsJSON(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"ADAPTER_GRPC_ADDRESS": "env-host:1000",
		"SESSION_COOLDOWN":     "5s",
		"LOG_FILE":             "env.log",
	})
	path := writeTempJSONConfig(t, map[string]any{
		"log": map[string]any{"file": "json.log"},
	})

	// Act
	cfg, err := GetClientConfig([]string{"-grpc-address", "flag-host:2000", "-c", path})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "flag-host:2000", cfg.Adapter.GRPCAddress)
	assert.Equal(t, 5*time.Second, cfg.Session.Cooldown)
	assert.Equal(t, "json.log", cfg.Log.File)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return newClientConfig(defaultConfig())
	}

	tests := []struct {
		name    string
		mutate  func(*ClientConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*ClientConfig) {}},
		{name: "empty address", mutate: func(c *ClientConfig) { c.Adapter.GRPCAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "address without port", mutate: func(c *ClientConfig) { c.Adapter.GRPCAddress = "localhost" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero keepalive", mutate: func(c *ClientConfig) { c.Adapter.KeepAliveTime = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "negative timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = -time.Second }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero cooldown", mutate: func(c *ClientConfig) { c.Session.Cooldown = 0 }, wantErr: ErrInvalidSessionConfigs},
		{name: "empty log file", mutate: func(c *ClientConfig) { c.Log.File = "" }, wantErr: ErrInvalidLogConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
