// Package config provides configuration loading, merging, and validation
// facilities for go-group-sync.
//
// Configuration is assembled from multiple sources; later sources override
// earlier non-zero fields:
//  1. JSON config file (path taken from the env or flag sources)
//  2. Environment variables (GROUPSYNC_ prefix)
//  3. Command-line flags
//
// Defaults are applied to whatever is still unset after merging. The main
// entry point is [GetStructuredConfig].
package config
