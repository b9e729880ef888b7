// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied by [StructuredConfig.setDefaults].
const (
	DefaultDSN              = "groupsync.db"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultSyncInterval     = 5 * time.Minute
	DefaultFetchConcurrency = 1
	DefaultErrorBufferSize  = 16
	DefaultLogLevel         = "info"
)

// StructuredConfig is the top-level configuration container.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session and logging settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the homeserver address and outbound request settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background sync and fetch fan-out settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Run holds per-invocation options that only come from flags.
	Run Run

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: GROUPSYNC_CONFIG; flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// AccessToken is the Matrix access token sent as a bearer token.
	// Env: GROUPSYNC_APP_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: GROUPSYNC_APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Adapter holds settings for the homeserver client.
type Adapter struct {
	// HTTPAddress is the homeserver base URL (e.g. "https://matrix.org").
	// A missing scheme defaults to https.
	// Env: GROUPSYNC_ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: GROUPSYNC_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit caps outbound requests per second. Zero disables pacing.
	// Env: GROUPSYNC_ADAPTER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`
}

// Storage groups local store settings.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local relational store.
type DB struct {
	// DSN is either a SQLite file path / "file:" URI, or a PostgreSQL URL
	// ("postgres://..."), which selects the pgx driver.
	// Env: GROUPSYNC_STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for background processing.
type Workers struct {
	// SyncInterval is the period of the background sync job in watch mode.
	// Env: GROUPSYNC_WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// FetchConcurrency is the number of groups fetched in parallel by one
	// task execution. 1 keeps the fetch fully sequential.
	// Env: GROUPSYNC_WORKERS_FETCH_CONCURRENCY
	FetchConcurrency int `env:"FETCH_CONCURRENCY"`

	// ErrorBufferSize is the capacity of the error bus queue.
	// Env: GROUPSYNC_WORKERS_ERROR_BUFFER
	ErrorBufferSize int `env:"ERROR_BUFFER"`
}

// Run holds options describing what a single invocation should do.
type Run struct {
	// GroupIDs are the positional arguments. Empty means all active groups.
	GroupIDs []string

	// Watch keeps the process running and re-syncs every SyncInterval.
	Watch bool

	// RefreshJoined marks the server's joined groups as joined locally
	// before syncing.
	RefreshJoined bool
}

// GetStructuredConfig loads, merges, defaults, and validates the
// configuration using the process environment and os.Args.
func GetStructuredConfig() (*StructuredConfig, error) {
	return Load(osArgs())
}

// Load is [GetStructuredConfig] with explicit command-line arguments
// (without the program name).
func Load(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

func (cfg *StructuredConfig) setDefaults() {
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.SyncInterval == 0 {
		cfg.Workers.SyncInterval = DefaultSyncInterval
	}
	if cfg.Workers.FetchConcurrency == 0 {
		cfg.Workers.FetchConcurrency = DefaultFetchConcurrency
	}
	if cfg.Workers.ErrorBufferSize == 0 {
		cfg.Workers.ErrorBufferSize = DefaultErrorBufferSize
	}
}
