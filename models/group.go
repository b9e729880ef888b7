// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GroupSummaryResponse is the decoded body of
// GET /_matrix/client/r0/groups/{groupId}/summary.
type GroupSummaryResponse struct {
	// Profile holds the public group profile. The homeserver may omit it.
	Profile *GroupProfile `json:"profile,omitempty"`

	// User describes the requesting user's relation to the group.
	User *GroupSummaryUser `json:"user,omitempty"`
}

// GroupProfile is the public profile of a group.
type GroupProfile struct {
	Name             string `json:"name,omitempty"`
	AvatarURL        string `json:"avatar_url,omitempty"`
	ShortDescription string `json:"short_description,omitempty"`
	LongDescription  string `json:"long_description,omitempty"`
	IsPublic         bool   `json:"is_public,omitempty"`
	IsOpenlyJoinable bool   `json:"is_openly_joinable,omitempty"`
}

// GroupSummaryUser is the "user" section of a group summary.
type GroupSummaryUser struct {
	Membership   string `json:"membership,omitempty"`
	IsPublicised bool   `json:"is_publicised,omitempty"`
	IsPublic     bool   `json:"is_public,omitempty"`
	IsPrivileged bool   `json:"is_privileged,omitempty"`
}

// GroupRooms is the decoded body of GET /_matrix/client/r0/groups/{groupId}/rooms.
type GroupRooms struct {
	TotalRoomCountEstimate int         `json:"total_room_count_estimate,omitempty"`
	Rooms                  []GroupRoom `json:"chunk"`
}

// GroupRoom is a single room listed in a group.
type GroupRoom struct {
	RoomID           string `json:"room_id"`
	Name             string `json:"name,omitempty"`
	Topic            string `json:"topic,omitempty"`
	AvatarURL        string `json:"avatar_url,omitempty"`
	CanonicalAlias   string `json:"canonical_alias,omitempty"`
	NumJoinedMembers int    `json:"num_joined_members,omitempty"`
	WorldReadable    bool   `json:"world_readable,omitempty"`
	GuestCanJoin     bool   `json:"guest_can_join,omitempty"`
	IsPublic         bool   `json:"is_public,omitempty"`
}

// GroupUsers is the decoded body of GET /_matrix/client/r0/groups/{groupId}/users.
type GroupUsers struct {
	TotalUserCountEstimate int         `json:"total_user_count_estimate,omitempty"`
	Users                  []GroupUser `json:"chunk"`
}

// GroupUser is a single member listed in a group.
type GroupUser struct {
	UserID       string `json:"user_id"`
	DisplayName  string `json:"displayname,omitempty"`
	AvatarURL    string `json:"avatar_url,omitempty"`
	IsPublic     bool   `json:"is_public,omitempty"`
	IsPrivileged bool   `json:"is_privileged,omitempty"`
}

// JoinedGroupsResponse is the decoded body of GET /_matrix/client/r0/joined_groups.
type JoinedGroupsResponse struct {
	GroupIDs []string `json:"groups"`
}

// GroupData bundles everything fetched for one group during a single sync.
// It is staged in memory and never persisted as is.
type GroupData struct {
	GroupID string
	Summary GroupSummaryResponse
	Rooms   GroupRooms
	Users   GroupUsers
}
