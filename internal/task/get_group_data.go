package task

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-group-sync/internal/adapter"
	"github.com/MKhiriev/go-group-sync/internal/logger"
	"github.com/MKhiriev/go-group-sync/internal/request"
	"github.com/MKhiriev/go-group-sync/internal/store"
	"github.com/MKhiriev/go-group-sync/internal/utils"
	"github.com/MKhiriev/go-group-sync/models"
)

// Names of the remote calls, used in logs and in reported global errors.
const (
	callGroupSummary = "group.summary"
	callGroupRooms   = "group.rooms"
	callGroupUsers   = "group.users"
	callJoinedGroups = "groups.joined"
)

type defaultGetGroupDataTask struct {
	api         adapter.GroupAPI
	gateway     store.GroupGateway
	executor    *request.Executor
	concurrency int
	logger      *logger.Logger
}

// NewGetGroupDataTask returns the default [GetGroupDataTask]. concurrency is
// the number of groups fetched in parallel; values below 1 mean 1.
func NewGetGroupDataTask(api adapter.GroupAPI, gateway store.GroupGateway, executor *request.Executor, concurrency int, log *logger.Logger) GetGroupDataTask {
	if concurrency < 1 {
		concurrency = 1
	}
	if log == nil {
		log = logger.Nop()
	}

	return &defaultGetGroupDataTask{
		api:         api,
		gateway:     gateway,
		executor:    executor,
		concurrency: concurrency,
		logger:      log,
	}
}

// Execute implements [Task].
//
// All remote calls finish before the store is touched. A failing call, or a
// context cancelled before the commit starts, leaves the store unchanged.
// Once begun, the commit runs to completion regardless of ctx.
func (t *defaultGetGroupDataTask) Execute(ctx context.Context, params GetGroupDataParams) error {
	traceID := utils.NewTraceID()
	taskLogger := t.logger.With().
		Str("task", "get_group_data").
		Str("trace_id", traceID).
		Logger()
	ctx = taskLogger.WithContext(utils.WithTraceID(ctx, traceID))
	log := logger.FromContext(ctx)

	groupIDs, err := t.resolveGroupIDs(ctx, params)
	if err != nil {
		log.Err(err).Str("func", "defaultGetGroupDataTask.Execute").Str("params", params.String()).Msg("failed to resolve group ids")
		return fmt.Errorf("%w: %w", ErrResolveGroupIDs, err)
	}
	if len(groupIDs) == 0 {
		log.Debug().Str("func", "defaultGetGroupDataTask.Execute").Str("params", params.String()).Msg("no groups to synchronize")
		return nil
	}

	log.Debug().
		Str("func", "defaultGetGroupDataTask.Execute").
		Int("groups", len(groupIDs)).
		Int("concurrency", t.concurrency).
		Msg("fetching group data")

	data, err := t.fetchGroupData(ctx, groupIDs)
	if err != nil {
		log.Err(err).Str("func", "defaultGetGroupDataTask.Execute").Msg("failed to fetch group data")
		return fmt.Errorf("%w: %w", ErrFetchGroupData, err)
	}

	if err := ctx.Err(); err != nil {
		log.Warn().Err(err).Str("func", "defaultGetGroupDataTask.Execute").Msg("cancelled before commit")
		return err
	}

	if err := t.commit(context.WithoutCancel(ctx), data); err != nil {
		log.Err(err).Str("func", "defaultGetGroupDataTask.Execute").Msg("failed to commit group data")
		return fmt.Errorf("%w: %w", ErrCommitGroupData, err)
	}

	log.Info().
		Str("func", "defaultGetGroupDataTask.Execute").
		Int("groups", len(data)).
		Msg("group data synchronized")

	return nil
}

func (t *defaultGetGroupDataTask) resolveGroupIDs(ctx context.Context, params GetGroupDataParams) ([]string, error) {
	if !params.IsFetchAllActive() {
		return dedupeIDs(params.GroupIDs()), nil
	}

	ids, err := t.gateway.GetGroupIDsByMembership(ctx, models.ActiveMemberships())
	if err != nil {
		return nil, err
	}
	return dedupeIDs(ids), nil
}

// fetchGroupData fetches every group, at most t.concurrency at a time. The
// first failure cancels the fetches still pending. Results keep the order of
// groupIDs.
func (t *defaultGetGroupDataTask) fetchGroupData(ctx context.Context, groupIDs []string) ([]models.GroupData, error) {
	results := make([]models.GroupData, len(groupIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.concurrency)

	for i, groupID := range groupIDs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			data, err := t.fetchGroup(gctx, groupID)
			if err != nil {
				return fmt.Errorf("group %s: %w", groupID, err)
			}
			results[i] = data
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// fetchGroup issues the summary, rooms and users calls of one group in that
// order and stops at the first failure.
func (t *defaultGetGroupDataTask) fetchGroup(ctx context.Context, groupID string) (models.GroupData, error) {
	summary, err := request.Execute(ctx, t.executor, callGroupSummary, func(ctx context.Context) (models.GroupSummaryResponse, error) {
		return t.api.GetSummary(ctx, groupID)
	})
	if err != nil {
		return models.GroupData{}, err
	}

	rooms, err := request.Execute(ctx, t.executor, callGroupRooms, func(ctx context.Context) (models.GroupRooms, error) {
		return t.api.GetRooms(ctx, groupID)
	})
	if err != nil {
		return models.GroupData{}, err
	}

	users, err := request.Execute(ctx, t.executor, callGroupUsers, func(ctx context.Context) (models.GroupUsers, error) {
		return t.api.GetUsers(ctx, groupID)
	})
	if err != nil {
		return models.GroupData{}, err
	}

	return models.GroupData{
		GroupID: groupID,
		Summary: summary,
		Rooms:   rooms,
		Users:   users,
	}, nil
}

func (t *defaultGetGroupDataTask) commit(ctx context.Context, data []models.GroupData) error {
	return t.gateway.InTransaction(ctx, func(ctx context.Context, tx store.GroupSummaryTx) error {
		for _, groupData := range data {
			summary, err := tx.GetOrCreateGroupSummary(ctx, groupData.GroupID)
			if err != nil {
				return err
			}

			summary.ApplyGroupData(groupData)

			if err := tx.SaveGroupSummary(ctx, summary); err != nil {
				return err
			}
		}
		return nil
	})
}

// dedupeIDs removes repeated ids, keeping the first occurrence.
func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
