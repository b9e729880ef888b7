// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GroupSummary is the locally persisted snapshot of a group.
//
// A record exists for a group id once the group has been synchronized at least
// once. RoomIDs and UserIDs always hold the result of the most recent
// successful fetch; they are replaced, never merged.
type GroupSummary struct {
	GroupID          string   `json:"group_id"`
	DisplayName      string   `json:"display_name"`
	AvatarURL        string   `json:"avatar_url"`
	ShortDescription string   `json:"short_description"`
	RoomIDs          []string `json:"room_ids"`
	UserIDs          []string `json:"user_ids"`
}

// ApplyGroupData overwrites s with the freshly fetched data.
//
// The display name falls back to the group id when the profile name is empty
// or the profile is missing. Room and user ids keep the fetched order with
// duplicates removed.
func (s *GroupSummary) ApplyGroupData(data GroupData) {
	var profile GroupProfile
	if data.Summary.Profile != nil {
		profile = *data.Summary.Profile
	}

	s.AvatarURL = profile.AvatarURL
	s.ShortDescription = profile.ShortDescription
	s.DisplayName = profile.Name
	if s.DisplayName == "" {
		s.DisplayName = s.GroupID
	}

	roomIDs := make([]string, 0, len(data.Rooms.Rooms))
	for _, room := range data.Rooms.Rooms {
		roomIDs = append(roomIDs, room.RoomID)
	}
	s.RoomIDs = uniqueStrings(roomIDs)

	userIDs := make([]string, 0, len(data.Users.Users))
	for _, user := range data.Users.Users {
		userIDs = append(userIDs, user.UserID)
	}
	s.UserIDs = uniqueStrings(userIDs)
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
