package task

import "errors"

// Phase errors. The error returned by a task wraps one of them together with
// the root cause, so both can be matched with [errors.Is].
var (
	ErrResolveGroupIDs   = errors.New("failed to resolve group ids")
	ErrFetchGroupData    = errors.New("failed to fetch group data")
	ErrCommitGroupData   = errors.New("failed to commit group data")
	ErrFetchJoinedGroups = errors.New("failed to fetch joined groups")
	ErrSaveMembership    = errors.New("failed to save group membership")
)
