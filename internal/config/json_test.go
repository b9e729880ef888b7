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

func writeTempJSONConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSONConfig(t, `{
		"app": {"access_token": "syt_json", "log_level": "debug"},
		"adapter": {"http_address": "https://hs.example.org", "request_timeout": "20s", "rate_limit": 1.5},
		"storage": {"db": {"dsn": "json.db"}},
		"workers": {"sync_interval": "10m", "fetch_concurrency": 2, "error_buffer_size": 8}
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "syt_json", cfg.App.AccessToken)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "https://hs.example.org", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.InDelta(t, 1.5, cfg.Adapter.RateLimit, 0.0001)
	assert.Equal(t, "json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 10*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 2, cfg.Workers.FetchConcurrency)
	assert.Equal(t, 8, cfg.Workers.ErrorBufferSize)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_Malformed(t *testing.T) {
	path := writeTempJSONConfig(t, `{"app": `)

	_, err := parseJSON(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_JSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1m30s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))

	out, err := json.Marshal(Duration(2 * time.Hour))
	require.NoError(t, err)
	assert.JSONEq(t, `"2h0m0s"`, string(out))
}
