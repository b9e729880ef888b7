package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-a", "matrix.example.org",
		"-t", "syt_token",
		"-d", "cache.db",
		"-config", "cfg.json",
		"-log-level", "warn",
		"-request-timeout", "15s",
		"-rate-limit", "5",
		"-sync-interval", "2m",
		"-concurrency", "3",
		"-watch",
		"-joined",
		"+g1:example.org", "+g2:example.org",
	}

	cfg, err := parseFlags(args)

	require.NoError(t, err)
	assert.Equal(t, "matrix.example.org", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "syt_token", cfg.App.AccessToken)
	assert.Equal(t, "cache.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.InDelta(t, 5.0, cfg.Adapter.RateLimit, 0.0001)
	assert.Equal(t, 2*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 3, cfg.Workers.FetchConcurrency)
	assert.True(t, cfg.Run.Watch)
	assert.True(t, cfg.Run.RefreshJoined)
	assert.Equal(t, []string{"+g1:example.org", "+g2:example.org"}, cfg.Run.GroupIDs)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)

	require.NoError(t, err)
	assert.Empty(t, cfg.Run.GroupIDs)
	assert.False(t, cfg.Run.Watch)
	assert.Empty(t, cfg.Adapter.HTTPAddress)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-c", "short.json"})

	require.NoError(t, err)
	assert.Equal(t, "short.json", cfg.JSONFilePath)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-nope"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}
