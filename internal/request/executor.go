// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package request runs single remote calls on behalf of sync tasks.
//
// [Execute] invokes a call exactly once, optionally paced by a rate limiter,
// and publishes session-invalidating failures on the error bus before handing
// the error back to the caller.
package request

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-group-sync/internal/adapter"
	"github.com/MKhiriev/go-group-sync/internal/errbus"
	"github.com/MKhiriev/go-group-sync/internal/logger"
	"github.com/MKhiriev/go-group-sync/models"
	"golang.org/x/time/rate"
)

// Executor carries the collaborators shared by every executed call.
type Executor struct {
	reporter errbus.Reporter
	limiter  *rate.Limiter
	logger   *logger.Logger
}

// NewExecutor returns an Executor publishing to reporter. ratePerSecond caps
// the number of calls started per second; zero or less disables pacing.
func NewExecutor(reporter errbus.Reporter, ratePerSecond float64, log *logger.Logger) *Executor {
	if log == nil {
		log = logger.Nop()
	}

	e := &Executor{
		reporter: reporter,
		logger:   log,
	}
	if ratePerSecond > 0 {
		burst := int(ratePerSecond)
		if burst < 1 {
			burst = 1
		}
		e.limiter = rate.NewLimiter(rate.Limit(ratePerSecond), burst)
	}

	return e
}

// Execute performs call exactly once and returns its result. A context that
// is already done fails the call without invoking it.
//
// On failure the error is classified; a session-invalidating error is
// reported before Execute returns. The returned error is prefixed with name
// and wraps the original, so errors.Is/As keep working.
func Execute[T any](ctx context.Context, e *Executor, name string, call func(context.Context) (T, error)) (T, error) {
	var zero T
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return zero, fmt.Errorf("%s: %w", name, err)
	}

	if e.limiter != nil {
		if err := e.limiter.Wait(ctx); err != nil {
			return zero, fmt.Errorf("%s: %w", name, err)
		}
	}

	result, err := call(ctx)
	if err == nil {
		return result, nil
	}

	if event, ok := Classify(name, err); ok {
		log.Warn().
			Err(err).
			Str("func", "request.Execute").
			Str("call", name).
			Str("kind", event.Kind.String()).
			Msg("session-invalidating error")
		if e.reporter != nil {
			e.reporter.Report(ctx, event)
		}
	} else {
		log.Debug().
			Err(err).
			Str("func", "request.Execute").
			Str("call", name).
			Msg("request failed")
	}

	return zero, fmt.Errorf("%s: %w", name, err)
}

// Classify reports whether err invalidates the whole session and, if so,
// builds the event to publish for it.
func Classify(name string, err error) (models.GlobalError, bool) {
	var serverErr *adapter.ServerError
	if !errors.As(err, &serverErr) {
		return models.GlobalError{}, false
	}

	switch {
	case serverErr.StatusCode == http.StatusUnauthorized:
		return models.GlobalError{
			Kind:       models.GlobalErrorInvalidToken,
			Call:       name,
			SoftLogout: serverErr.SoftLogout,
			Err:        err,
		}, true
	case serverErr.StatusCode == http.StatusForbidden && serverErr.ErrCode == adapter.ErrCodeConsentNotGiven:
		return models.GlobalError{
			Kind:       models.GlobalErrorConsentNotGiven,
			Call:       name,
			ConsentURI: serverErr.ConsentURI,
			Err:        err,
		}, true
	default:
		return models.GlobalError{}, false
	}
}
