// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used to talk to a Matrix
// homeserver's group endpoints.
//
// The primary abstraction is [GroupAPI], which decouples the sync task from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPGroupAPI]) built on resty.
//
// Non-2xx responses are converted by mapHTTPError into a [*ServerError] that
// carries the Matrix errcode and wraps one of the status sentinels defined in
// errors.go, so callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401)
// or [errors.As] to inspect the Matrix error body.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-group-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/group_api_mock.go -package=mock

// GroupAPI defines typed calls against the homeserver's group resources.
// Every call is issued exactly once; implementations never retry.
type GroupAPI interface {
	// SetToken stores the access token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the access token currently stored, or an empty string.
	Token() string

	// GetSummary fetches the profile summary of groupID.
	GetSummary(ctx context.Context, groupID string) (models.GroupSummaryResponse, error)

	// GetRooms fetches the rooms listed in groupID.
	GetRooms(ctx context.Context, groupID string) (models.GroupRooms, error)

	// GetUsers fetches the members of groupID.
	GetUsers(ctx context.Context, groupID string) (models.GroupUsers, error)

	// GetJoinedGroups fetches the ids of every group the user has joined.
	GetJoinedGroups(ctx context.Context) ([]string, error)
}
