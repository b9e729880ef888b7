// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the group sync application runtime.
//
// It wires the homeserver adapter, the local store, the error bus and the
// sync tasks into a single process lifecycle, and stops the process when the
// session is invalidated by the server.
package client
