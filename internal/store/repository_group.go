package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-group-sync/internal/logger"
	"github.com/MKhiriev/go-group-sync/models"
)

// querier is the part of *sql.DB and *sql.Tx the repository needs.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type groupRepository struct {
	*DB
}

// NewGroupRepository returns a [GroupGateway] backed by db.
func NewGroupRepository(db *DB) GroupGateway {
	return &groupRepository{DB: db}
}

func (r *groupRepository) GetGroupIDsByMembership(ctx context.Context, memberships []models.Membership) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectGroupIDsByMembership(r.builder, memberships)
	if err != nil {
		log.Err(err).Str("func", "groupRepository.GetGroupIDsByMembership").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ids, err := queryStrings(ctx, r.DB.DB, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "groupRepository.GetGroupIDsByMembership").
			Int("memberships_count", len(memberships)).
			Bool("retryable", r.isRetryable(err)).
			Msg("failed to query group ids by membership")
		return nil, err
	}

	return ids, nil
}

func (r *groupRepository) InTransaction(ctx context.Context, fn func(ctx context.Context, tx GroupSummaryTx) error) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "groupRepository.InTransaction").
			Bool("retryable", r.isRetryable(err)).
			Str("pg_code", postgresError(err)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Err(rbErr).Str("func", "groupRepository.InTransaction").Msg("failed to roll back transaction")
		}
	}()

	if err := fn(ctx, &groupSummaryTx{tx: tx, db: r.DB}); err != nil {
		log.Debug().Err(err).Str("func", "groupRepository.InTransaction").Msg("rolling back transaction")
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "groupRepository.InTransaction").
			Bool("retryable", r.isRetryable(err)).
			Str("pg_code", postgresError(err)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	committed = true

	return nil
}

func (r *groupRepository) GetGroupSummary(ctx context.Context, groupID string) (models.GroupSummary, error) {
	summary, err := readGroupSummary(ctx, r.DB.DB, r.builder, groupID)
	if err != nil {
		if !errors.Is(err, ErrGroupSummaryNotFound) {
			logger.FromContext(ctx).Err(err).
				Str("func", "groupRepository.GetGroupSummary").
				Str("group_id", groupID).
				Msg("failed to read group summary")
		}
		return models.GroupSummary{}, err
	}

	return *summary, nil
}

func (r *groupRepository) SaveGroupMembership(ctx context.Context, groupID string, membership models.Membership) error {
	log := logger.FromContext(ctx)

	if !membership.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidMembership, membership)
	}

	query, args, err := upsertGroupMembership(r.builder, groupID, membership)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "groupRepository.SaveGroupMembership").
			Str("group_id", groupID).
			Str("membership", string(membership)).
			Bool("retryable", r.isRetryable(err)).
			Msg("failed to save group membership")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// groupSummaryTx implements [GroupSummaryTx] on an open transaction.
type groupSummaryTx struct {
	tx *sql.Tx
	db *DB
}

func (t *groupSummaryTx) GetOrCreateGroupSummary(ctx context.Context, groupID string) (*models.GroupSummary, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertGroupSummaryIfAbsent(t.db.builder, groupID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := t.tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "groupSummaryTx.GetOrCreateGroupSummary").
			Str("group_id", groupID).
			Bool("retryable", t.db.isRetryable(err)).
			Msg("failed to insert group summary")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	summary, err := readGroupSummary(ctx, t.tx, t.db.builder, groupID)
	if err != nil {
		log.Err(err).
			Str("func", "groupSummaryTx.GetOrCreateGroupSummary").
			Str("group_id", groupID).
			Msg("failed to read group summary")
		return nil, err
	}

	return summary, nil
}

func (t *groupSummaryTx) SaveGroupSummary(ctx context.Context, summary *models.GroupSummary) error {
	log := logger.FromContext(ctx)

	query, args, err := updateGroupSummary(t.db.builder, summary)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := t.tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "groupSummaryTx.SaveGroupSummary").
			Str("group_id", summary.GroupID).
			Bool("retryable", t.db.isRetryable(err)).
			Msg("failed to update group summary")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("%w: %s", ErrGroupSummaryNotFound, summary.GroupID)
	}

	if err := t.replaceRelation(ctx, roomsRelation, summary.GroupID, summary.RoomIDs); err != nil {
		return err
	}
	if err := t.replaceRelation(ctx, usersRelation, summary.GroupID, summary.UserIDs); err != nil {
		return err
	}

	log.Debug().
		Str("func", "groupSummaryTx.SaveGroupSummary").
		Str("group_id", summary.GroupID).
		Int("rooms", len(summary.RoomIDs)).
		Int("users", len(summary.UserIDs)).
		Msg("group summary saved")

	return nil
}

// replaceRelation deletes every stored id of rel for groupID and inserts ids
// in their given order.
func (t *groupSummaryTx) replaceRelation(ctx context.Context, rel relation, groupID string, ids []string) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteRelationIDs(t.db.builder, rel, groupID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := t.tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "groupSummaryTx.replaceRelation").
			Str("table", rel.table).
			Str("group_id", groupID).
			Msg("failed to delete relation ids")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	offset := 0
	for _, chunk := range chunkIDs(ids, maxRelationRowsPerInsert) {
		query, args, err := insertRelationIDs(t.db.builder, rel, groupID, chunk, offset)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := t.tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "groupSummaryTx.replaceRelation").
				Str("table", rel.table).
				Str("group_id", groupID).
				Int("offset", offset).
				Msg("failed to insert relation ids")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		offset += len(chunk)
	}

	return nil
}

func readGroupSummary(ctx context.Context, q querier, b sq.StatementBuilderType, groupID string) (*models.GroupSummary, error) {
	query, args, err := selectGroupSummary(b, groupID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	summary := &models.GroupSummary{}
	err = q.QueryRowContext(ctx, query, args...).Scan(
		&summary.GroupID,
		&summary.DisplayName,
		&summary.AvatarURL,
		&summary.ShortDescription,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrGroupSummaryNotFound, groupID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	query, args, err = selectRelationIDs(b, roomsRelation, groupID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if summary.RoomIDs, err = queryStrings(ctx, q, query, args...); err != nil {
		return nil, err
	}

	query, args, err = selectRelationIDs(b, usersRelation, groupID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if summary.UserIDs, err = queryStrings(ctx, q, query, args...); err != nil {
		return nil, err
	}

	return summary, nil
}

// queryStrings runs a single-column query and collects the values. The result
// is never nil.
func queryStrings(ctx context.Context, q querier, query string, args ...any) ([]string, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return values, nil
}
