// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-group-sync/internal/config"
	"github.com/MKhiriev/go-group-sync/internal/logger"
)

// Storages groups the local repositories into a single value that can be
// passed to the task layer.
type Storages struct {
	// GroupGateway stores group summaries and local memberships.
	GroupGateway GroupGateway

	db *DB
}

// NewStorages initialises the local storage layer. It performs the following
// steps:
//  1. Opens a connection selected by cfg.DB.DSN (SQLite file or PostgreSQL
//     URL), creating the SQLite file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to a fresh
//     [GroupGateway].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("func", "NewStorages").Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		GroupGateway: NewGroupRepository(db),
		db:           db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
