// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package errbus is the process-wide channel for session-invalidating
// failures.
//
// Producers only see [Reporter] and publish without waiting for anyone to
// listen. [Bus] queues the events and delivers each one to every subscribed
// [Handler] on its own dispatcher goroutine.
package errbus

import (
	"context"

	"github.com/MKhiriev/go-group-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/error_reporter_mock.go -package=mock

// Reporter publishes session-wide errors. Report never blocks the caller.
type Reporter interface {
	Report(ctx context.Context, event models.GlobalError)
}

// Handler receives every event published after it subscribed.
type Handler func(ctx context.Context, event models.GlobalError)
