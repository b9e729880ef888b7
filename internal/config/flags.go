package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-a homeserver address
//	-t access token
//	-d database DSN (SQLite path or postgres:// URL)
//	-c/-config json file path with configs
//	-log-level zerolog level
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rate-limit max requests per second, 0 disables pacing
//	-sync-interval background sync period in watch mode
//	-concurrency number of groups fetched in parallel
//	-watch keep running and re-sync periodically
//	-joined mark server-side joined groups as joined before syncing
//
// Remaining positional arguments are the group ids to sync.
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		homeserver     string
		accessToken    string
		databaseDSN    string
		jsonConfigPath string
		logLevel       string
		requestTimeout time.Duration
		rateLimit      float64
		syncInterval   time.Duration
		concurrency    int
		watch          bool
		refreshJoined  bool
	)

	fs := flag.NewFlagSet("groupsync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&homeserver, "a", "", "Homeserver address")
	fs.StringVar(&accessToken, "t", "", "Access token")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Max requests per second (0 = unlimited)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 5m)")
	fs.IntVar(&concurrency, "concurrency", 0, "Groups fetched in parallel")
	fs.BoolVar(&watch, "watch", false, "Keep running and re-sync periodically")
	fs.BoolVar(&refreshJoined, "joined", false, "Mark server-side joined groups as joined before syncing")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			AccessToken: accessToken,
			LogLevel:    logLevel,
		},
		Adapter: Adapter{
			HTTPAddress:    homeserver,
			RequestTimeout: requestTimeout,
			RateLimit:      rateLimit,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Workers: Workers{
			SyncInterval:     syncInterval,
			FetchConcurrency: concurrency,
		},
		Run: Run{
			GroupIDs:      fs.Args(),
			Watch:         watch,
			RefreshJoined: refreshJoined,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
