package task

// GetGroupDataParams selects the groups a [GetGroupDataTask] synchronizes.
// The zero value is not valid; use [FetchAllActive] or [FetchWithIDs].
type GetGroupDataParams struct {
	allActive bool
	groupIDs  []string
}

// FetchAllActive selects every group whose local membership is active.
func FetchAllActive() GetGroupDataParams {
	return GetGroupDataParams{allActive: true}
}

// FetchWithIDs selects exactly groupIDs. Duplicates are allowed and are
// fetched once.
func FetchWithIDs(groupIDs ...string) GetGroupDataParams {
	ids := make([]string, len(groupIDs))
	copy(ids, groupIDs)
	return GetGroupDataParams{groupIDs: ids}
}

// IsFetchAllActive reports whether p was built by [FetchAllActive].
func (p GetGroupDataParams) IsFetchAllActive() bool {
	return p.allActive
}

// GroupIDs returns a copy of the explicitly requested ids.
func (p GetGroupDataParams) GroupIDs() []string {
	ids := make([]string, len(p.groupIDs))
	copy(ids, p.groupIDs)
	return ids
}

func (p GetGroupDataParams) String() string {
	if p.allActive {
		return "all_active"
	}
	return "with_ids"
}

// RefreshJoinedGroupsParams carries no options.
type RefreshJoinedGroupsParams struct{}
