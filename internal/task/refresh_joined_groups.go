package task

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-group-sync/internal/adapter"
	"github.com/MKhiriev/go-group-sync/internal/logger"
	"github.com/MKhiriev/go-group-sync/internal/request"
	"github.com/MKhiriev/go-group-sync/internal/store"
	"github.com/MKhiriev/go-group-sync/internal/utils"
	"github.com/MKhiriev/go-group-sync/models"
)

type defaultRefreshJoinedGroupsTask struct {
	api      adapter.GroupAPI
	gateway  store.GroupGateway
	executor *request.Executor
	logger   *logger.Logger
}

// NewRefreshJoinedGroupsTask returns a [RefreshJoinedGroupsTask] that asks
// the server for the joined groups and stores their membership as joined.
// Groups missing from the server list keep their local membership.
func NewRefreshJoinedGroupsTask(api adapter.GroupAPI, gateway store.GroupGateway, executor *request.Executor, log *logger.Logger) RefreshJoinedGroupsTask {
	if log == nil {
		log = logger.Nop()
	}

	return &defaultRefreshJoinedGroupsTask{
		api:      api,
		gateway:  gateway,
		executor: executor,
		logger:   log,
	}
}

func (t *defaultRefreshJoinedGroupsTask) Execute(ctx context.Context, _ RefreshJoinedGroupsParams) error {
	traceID := utils.NewTraceID()
	taskLogger := t.logger.With().
		Str("task", "refresh_joined_groups").
		Str("trace_id", traceID).
		Logger()
	ctx = taskLogger.WithContext(utils.WithTraceID(ctx, traceID))
	log := logger.FromContext(ctx)

	groupIDs, err := request.Execute(ctx, t.executor, callJoinedGroups, t.api.GetJoinedGroups)
	if err != nil {
		log.Err(err).Str("func", "defaultRefreshJoinedGroupsTask.Execute").Msg("failed to fetch joined groups")
		return fmt.Errorf("%w: %w", ErrFetchJoinedGroups, err)
	}

	for _, groupID := range dedupeIDs(groupIDs) {
		if err := t.gateway.SaveGroupMembership(ctx, groupID, models.MembershipJoin); err != nil {
			log.Err(err).
				Str("func", "defaultRefreshJoinedGroupsTask.Execute").
				Str("group_id", groupID).
				Msg("failed to save group membership")
			return fmt.Errorf("%w: %w", ErrSaveMembership, err)
		}
	}

	log.Debug().
		Str("func", "defaultRefreshJoinedGroupsTask.Execute").
		Int("groups", len(groupIDs)).
		Msg("joined groups refreshed")

	return nil
}
