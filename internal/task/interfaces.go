// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package task implements entity synchronization tasks.
//
// A task resolves the ids it has to work on, fetches every remote resource
// of those entities through the request executor and commits all of them to
// the local store in one transaction. Either every entity is written or none
// is.
package task

import "context"

// Task is a unit of work parameterised by P.
type Task[P any] interface {
	Execute(ctx context.Context, params P) error
}

// GetGroupDataTask fetches group summaries, rooms and users and stores them
// locally.
type GetGroupDataTask interface {
	Task[GetGroupDataParams]
}

// RefreshJoinedGroupsTask records the groups the server reports as joined
// as locally joined.
type RefreshJoinedGroupsTask interface {
	Task[RefreshJoinedGroupsParams]
}
