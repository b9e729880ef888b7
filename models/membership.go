package models

// Membership is the local membership state of the current user in a group.
type Membership string

const (
	MembershipNone   Membership = "none"
	MembershipInvite Membership = "invite"
	MembershipJoin   Membership = "join"
	MembershipKnock  Membership = "knock"
	MembershipLeave  Membership = "leave"
	MembershipBan    Membership = "ban"
)

// ActiveMemberships returns the memberships under which a group is kept in
// sync: the user is either joined or invited.
func ActiveMemberships() []Membership {
	return []Membership{MembershipJoin, MembershipInvite}
}

// IsActive reports whether m is one of [ActiveMemberships].
func (m Membership) IsActive() bool {
	return m == MembershipJoin || m == MembershipInvite
}

// IsValid reports whether m is a known membership value.
func (m Membership) IsValid() bool {
	switch m {
	case MembershipNone, MembershipInvite, MembershipJoin, MembershipKnock, MembershipLeave, MembershipBan:
		return true
	}
	return false
}

// Group is the locally tracked membership of a single group.
type Group struct {
	GroupID    string     `json:"group_id"`
	Membership Membership `json:"membership"`
}
