package config

import (
	"encoding/json"
	"os"
	"path/filepath"
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

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs yields the
// defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(""), cfg)
}

// TestBuild_ReturnsConfigOnSourceError verifies that a pre-set b.err is
// wrapped and returned together with a usable config.
func TestBuild_ReturnsConfigOnSourceError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierConfigWins verifies the priority of merged configs.
func TestBuild_EarlierConfigWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{Port: 5050}},
		&StructuredConfig{Server: Server{Port: 6060, Host: "127.0.0.1"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 5050, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
}

func TestBuild_LogLevelDefaultDependsOnEnvironment(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{Environment: "production"}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "info", cfg.App.LogLevel)

	cfg, err = newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, EnvironmentDevelopment, cfg.App.Environment)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder().withJSON()

	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")})

	b.withJSON()

	assert.ErrorIs(t, b.err, ErrReadingJSONConfig)
	assert.Len(t, b.configs, 1)
}

// ── Load ──────────────────────────────────────────────────────────────────────

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(MapEnv(nil), nil)

	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Equal(t, int64(DefaultMaxBodyBytes), cfg.Server.MaxBodyBytes)
	assert.Equal(t, DefaultDBPingTimeout, cfg.Storage.DB.PingTimeout)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.Server.GRPCAddress)
}

func TestLoad_Port(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want int
	}{
		{name: "numeric", vars: map[string]string{"PORT": "5050"}, want: 5050},
		{name: "above 65535 kept for the listener", vars: map[string]string{"PORT": "70000"}, want: 70000},
		{name: "non numeric", vars: map[string]string{"PORT": "five"}, want: 3000},
		{name: "empty", vars: map[string]string{"PORT": ""}, want: 3000},
		{name: "absent", vars: map[string]string{}, want: 3000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(MapEnv(tt.vars), nil)

			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Server.Port)
		})
	}
}

func TestLoad_Environment(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want string
	}{
		{name: "present", vars: map[string]string{"NODE_ENV": "production"}, want: "production"},
		{name: "empty", vars: map[string]string{"NODE_ENV": ""}, want: "development"},
		{name: "absent", vars: map[string]string{}, want: "development"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(MapEnv(tt.vars), nil)

			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.App.Environment)
		})
	}
}

func TestLoad_SourcePriority(t *testing.T) {
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"app":    map[string]any{"environment": "json-env", "log_level": "warn"},
		"server": map[string]any{"port": 7070, "host": "10.0.0.1", "request_timeout": "5s"},
	})

	readEnv := MapEnv(map[string]string{
		"PORT":   "5050",
		"CONFIG": jsonPath,
	})
	args := []string{"-p", "6060", "-e", "flag-env"}

	cfg, err := Load(readEnv, args)

	require.NoError(t, err)
	// env beats flags and JSON
	assert.Equal(t, 5050, cfg.Server.Port)
	// flags beat JSON
	assert.Equal(t, "flag-env", cfg.App.Environment)
	// JSON beats defaults
	assert.Equal(t, "10.0.0.1", cfg.Server.Host)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	// defaults fill the rest
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
}

func TestLoad_BrokenSourcesFallBackToDefaults(t *testing.T) {
	readEnv := MapEnv(map[string]string{
		"PORT":   "not-a-port",
		"CONFIG": filepath.Join(t.TempDir(), "missing.json"),
	})

	cfg, err := Load(readEnv, []string{"-unknown-flag"})

	require.NotNil(t, cfg)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.ErrorIs(t, err, ErrParsingFlags)
	assert.ErrorIs(t, err, ErrReadingJSONConfig)
}

func TestServer_HTTPAddress(t *testing.T) {
	assert.Equal(t, ":3000", Server{Port: 3000}.HTTPAddress())
	assert.Equal(t, "127.0.0.1:8080", Server{Host: "127.0.0.1", Port: 8080}.HTTPAddress())
	assert.Equal(t, "[::1]:8080", Server{Host: "::1", Port: 8080}.HTTPAddress())
}

func TestApp_IsDevelopment(t *testing.T) {
	assert.True(t, App{Environment: "development"}.IsDevelopment())
	assert.False(t, App{Environment: "production"}.IsDevelopment())
}
