// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the merged and defaulted config is usable.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout < 0 || cfg.Adapter.RateLimit < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.FetchConcurrency <= 0 || cfg.Workers.ErrorBufferSize <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if strings.TrimSpace(cfg.App.AccessToken) == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
