package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{AccessToken: "syt_token"},
		Adapter: Adapter{HTTPAddress: "https://hs.example.org"},
	}
}

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultSyncInterval, cfg.Workers.SyncInterval)
	assert.Equal(t, DefaultFetchConcurrency, cfg.Workers.FetchConcurrency)
	assert.Equal(t, DefaultErrorBufferSize, cfg.Workers.ErrorBufferSize)
	assert.Equal(t, DefaultLogLevel, cfg.App.LogLevel)
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
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:     App{AccessToken: "from-json", LogLevel: "debug"},
			Adapter: Adapter{HTTPAddress: "https://json.example.org", RequestTimeout: time.Second},
		},
		&StructuredConfig{
			App: App{AccessToken: "from-env"},
		},
		&StructuredConfig{
			Adapter: Adapter{HTTPAddress: "https://flags.example.org"},
			Run:     Run{GroupIDs: []string{"g1"}, Watch: true},
		},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.AccessToken)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "https://flags.example.org", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, []string{"g1"}, cfg.Run.GroupIDs)
	assert.True(t, cfg.Run.Watch)
}

func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(cfg *StructuredConfig) {}},
		{name: "missing address", mutate: func(cfg *StructuredConfig) { cfg.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "negative rate limit", mutate: func(cfg *StructuredConfig) { cfg.Adapter.RateLimit = -1 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "missing token", mutate: func(cfg *StructuredConfig) { cfg.App.AccessToken = " " }, wantErr: ErrInvalidAppConfigs},
		{name: "negative concurrency", mutate: func(cfg *StructuredConfig) { cfg.Workers.FetchConcurrency = -2 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "negative interval", mutate: func(cfg *StructuredConfig) { cfg.Workers.SyncInterval = -time.Second }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			b := newConfigBuilder()
			b.configs = append(b.configs, cfg)
			_, err := b.build()

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_JSONEnvFlagsPriority(t *testing.T) {
	path := writeTempJSONConfig(t, `{
		"app": {"access_token": "syt_json", "log_level": "debug"},
		"adapter": {"http_address": "https://json.example.org"},
		"workers": {"fetch_concurrency": 2}
	}`)
	setEnvVars(t, map[string]string{
		"GROUPSYNC_CONFIG":           path,
		"GROUPSYNC_APP_ACCESS_TOKEN": "syt_env",
	})

	cfg, err := Load([]string{"-a", "https://flags.example.org", "g1"})

	require.NoError(t, err)
	assert.Equal(t, "syt_env", cfg.App.AccessToken)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "https://flags.example.org", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 2, cfg.Workers.FetchConcurrency)
	assert.Equal(t, []string{"g1"}, cfg.Run.GroupIDs)
}

func TestLoad_BrokenJSON(t *testing.T) {
	path := writeTempJSONConfig(t, `not json`)

	_, err := Load([]string{"-c", path})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}
