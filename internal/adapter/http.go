package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-group-sync/internal/config"
	"github.com/MKhiriev/go-group-sync/internal/logger"
	"github.com/MKhiriev/go-group-sync/internal/utils"
	"github.com/MKhiriev/go-group-sync/models"
	"github.com/go-resty/resty/v2"
)

const (
	clientAPIPrefix = "/_matrix/client/r0"

	groupSummaryPath = clientAPIPrefix + "/groups/{groupId}/summary"
	groupRoomsPath   = clientAPIPrefix + "/groups/{groupId}/rooms"
	groupUsersPath   = clientAPIPrefix + "/groups/{groupId}/users"
	joinedGroupsPath = clientAPIPrefix + "/joined_groups"

	// traceIDHeader carries the trace id of the task issuing the request.
	traceIDHeader = "X-Request-Id"
)

type httpGroupAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPGroupAPI constructs an HTTP/REST implementation of [GroupAPI].
// It normalises and validates the homeserver URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL and request
// timeout, and seeds the access token from appCfg.AccessToken.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPGroupAPI(adapterCfg config.Adapter, appCfg config.App, logger *logger.Logger) (GroupAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	api := &httpGroupAPI{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	api.SetToken(appCfg.AccessToken)

	return api, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [GroupAPI].
func (h *httpGroupAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [GroupAPI].
func (h *httpGroupAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// GetSummary implements [GroupAPI] via GET /groups/{groupId}/summary.
func (h *httpGroupAPI) GetSummary(ctx context.Context, groupID string) (models.GroupSummaryResponse, error) {
	var summary models.GroupSummaryResponse
	if err := h.getGroupResource(ctx, groupSummaryPath, groupID, &summary); err != nil {
		return models.GroupSummaryResponse{}, fmt.Errorf("get group summary: %w", err)
	}
	return summary, nil
}

// GetRooms implements [GroupAPI] via GET /groups/{groupId}/rooms.
func (h *httpGroupAPI) GetRooms(ctx context.Context, groupID string) (models.GroupRooms, error) {
	var rooms models.GroupRooms
	if err := h.getGroupResource(ctx, groupRoomsPath, groupID, &rooms); err != nil {
		return models.GroupRooms{}, fmt.Errorf("get group rooms: %w", err)
	}
	return rooms, nil
}

// GetUsers implements [GroupAPI] via GET /groups/{groupId}/users.
func (h *httpGroupAPI) GetUsers(ctx context.Context, groupID string) (models.GroupUsers, error) {
	var users models.GroupUsers
	if err := h.getGroupResource(ctx, groupUsersPath, groupID, &users); err != nil {
		return models.GroupUsers{}, fmt.Errorf("get group users: %w", err)
	}
	return users, nil
}

// GetJoinedGroups implements [GroupAPI] via GET /joined_groups.
func (h *httpGroupAPI) GetJoinedGroups(ctx context.Context) ([]string, error) {
	var joined models.JoinedGroupsResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&joined).
		Get(joinedGroupsPath)
	if err != nil {
		return nil, fmt.Errorf("joined groups request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return joined.GroupIDs, nil
}

func (h *httpGroupAPI) getGroupResource(ctx context.Context, path, groupID string, result any) error {
	log := logger.FromContext(ctx)

	resp, err := h.authedRequest(ctx).
		SetPathParam("groupId", groupID).
		SetResult(result).
		Get(path)
	if err != nil {
		return fmt.Errorf("request %s: %w", groupID, err)
	}

	log.Debug().
		Str("func", "httpGroupAPI.getGroupResource").
		Str("group_id", groupID).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("group resource response")

	return mapHTTPError(resp)
}

func (h *httpGroupAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
