package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-group-sync/models"
)

const (
	tableGroupMemberships    = "group_memberships"
	tableGroupSummaries      = "group_summaries"
	tableGroupSummaryRooms   = "group_summary_rooms"
	tableGroupSummaryUsers   = "group_summary_users"
	onConflictDoNothing      = "ON CONFLICT (group_id) DO NOTHING"
	onConflictSetMembership  = "ON CONFLICT (group_id) DO UPDATE SET membership = excluded.membership"
	maxRelationRowsPerInsert = 300
)

// relation describes one of the id sets hanging off a group summary.
type relation struct {
	table  string
	column string
}

var (
	roomsRelation = relation{table: tableGroupSummaryRooms, column: "room_id"}
	usersRelation = relation{table: tableGroupSummaryUsers, column: "user_id"}
)

func selectGroupIDsByMembership(b sq.StatementBuilderType, memberships []models.Membership) (string, []any, error) {
	values := make([]string, 0, len(memberships))
	for _, m := range memberships {
		values = append(values, string(m))
	}

	return b.Select("group_id").
		From(tableGroupMemberships).
		Where(sq.Eq{"membership": values}).
		OrderBy("group_id").
		ToSql()
}

func upsertGroupMembership(b sq.StatementBuilderType, groupID string, membership models.Membership) (string, []any, error) {
	return b.Insert(tableGroupMemberships).
		Columns("group_id", "membership").
		Values(groupID, string(membership)).
		Suffix(onConflictSetMembership).
		ToSql()
}

func insertGroupSummaryIfAbsent(b sq.StatementBuilderType, groupID string) (string, []any, error) {
	return b.Insert(tableGroupSummaries).
		Columns("group_id", "display_name", "avatar_url", "short_description").
		Values(groupID, "", "", "").
		Suffix(onConflictDoNothing).
		ToSql()
}

func selectGroupSummary(b sq.StatementBuilderType, groupID string) (string, []any, error) {
	return b.Select("group_id", "display_name", "avatar_url", "short_description").
		From(tableGroupSummaries).
		Where(sq.Eq{"group_id": groupID}).
		ToSql()
}

func updateGroupSummary(b sq.StatementBuilderType, summary *models.GroupSummary) (string, []any, error) {
	return b.Update(tableGroupSummaries).
		Set("display_name", summary.DisplayName).
		Set("avatar_url", summary.AvatarURL).
		Set("short_description", summary.ShortDescription).
		Where(sq.Eq{"group_id": summary.GroupID}).
		ToSql()
}

func selectRelationIDs(b sq.StatementBuilderType, rel relation, groupID string) (string, []any, error) {
	return b.Select(rel.column).
		From(rel.table).
		Where(sq.Eq{"group_id": groupID}).
		OrderBy("position").
		ToSql()
}

func deleteRelationIDs(b sq.StatementBuilderType, rel relation, groupID string) (string, []any, error) {
	return b.Delete(rel.table).
		Where(sq.Eq{"group_id": groupID}).
		ToSql()
}

// insertRelationIDs builds one multi-row INSERT for ids, whose positions
// start at offset.
func insertRelationIDs(b sq.StatementBuilderType, rel relation, groupID string, ids []string, offset int) (string, []any, error) {
	insert := b.Insert(rel.table).Columns("group_id", rel.column, "position")
	for i, id := range ids {
		insert = insert.Values(groupID, id, offset+i)
	}
	return insert.ToSql()
}

// chunkIDs splits ids into slices of at most size elements, keeping order.
func chunkIDs(ids []string, size int) [][]string {
	if len(ids) == 0 {
		return nil
	}

	chunks := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}
