// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-group-sync/internal/config"
	"github.com/MKhiriev/go-group-sync/internal/logger"
	"github.com/MKhiriev/go-group-sync/internal/utils"
	"github.com/MKhiriev/go-group-sync/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "syt_test_token"

// newTestAdapter создаёт httpGroupAPI, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpGroupAPI {
	t.Helper()
	adapterCfg := config.Adapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}
	appCfg := config.App{AccessToken: testToken}

	a, err := NewHTTPGroupAPI(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpGroupAPI)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// fakeHomeserver routes the group endpoints the way a homeserver does and
// records the group ids and tokens it saw.
type fakeHomeserver struct {
	router *chi.Mux

	gotGroupIDs []string
	gotTokens   []string
}

func newFakeHomeserver(summary, rooms, users http.HandlerFunc) *fakeHomeserver {
	f := &fakeHomeserver{router: chi.NewRouter()}
	f.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			f.gotTokens = append(f.gotTokens, r.Header.Get("Authorization"))
			next.ServeHTTP(w, r)
		})
	})
	f.router.Route("/_matrix/client/r0", func(r chi.Router) {
		r.Route("/groups/{groupId}", func(r chi.Router) {
			r.Use(func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					f.gotGroupIDs = append(f.gotGroupIDs, chi.URLParam(r, "groupId"))
					next.ServeHTTP(w, r)
				})
			})
			if summary != nil {
				r.Get("/summary", summary)
			}
			if rooms != nil {
				r.Get("/rooms", rooms)
			}
			if users != nil {
				r.Get("/users", users)
			}
		})
		r.Get("/joined_groups", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, models.JoinedGroupsResponse{GroupIDs: []string{"g1", "g2"}})
		})
	})
	return f
}

// ── constructor ──────────────────────────────────────────────────────────────

func TestNewHTTPGroupAPI_InvalidAddress(t *testing.T) {
	_, err := NewHTTPGroupAPI(config.Adapter{HTTPAddress: "   "}, config.App{}, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid adapter http address")
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "matrix.example.org", want: "https://matrix.example.org"},
		{raw: "http://localhost:8008/", want: "http://localhost:8008"},
		{raw: " https://hs.example.org/base/ ", want: "https://hs.example.org/base"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetToken_Trims(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:8008")
	assert.Equal(t, testToken, a.Token())

	a.SetToken("  other  ")
	assert.Equal(t, "other", a.Token())
}

// ── group resources ──────────────────────────────────────────────────────────

func TestGetSummary_Success(t *testing.T) {
	want := models.GroupSummaryResponse{
		Profile: &models.GroupProfile{Name: "Group One", AvatarURL: "mxc://a", ShortDescription: "short"},
		User:    &models.GroupSummaryUser{Membership: "join"},
	}
	hs := newFakeHomeserver(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, want)
	}, nil, nil)
	srv := httptest.NewServer(hs.router)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetSummary(context.Background(), "g1")

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, []string{"g1"}, hs.gotGroupIDs)
	assert.Equal(t, []string{"Bearer " + testToken}, hs.gotTokens)
}

func TestGetRooms_Success(t *testing.T) {
	hs := newFakeHomeserver(nil, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"chunk":[{"room_id":"r1","name":"Room 1"},{"room_id":"r2"}],"total_room_count_estimate":2}`))
	}, nil)
	srv := httptest.NewServer(hs.router)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetRooms(context.Background(), "g1")

	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalRoomCountEstimate)
	require.Len(t, got.Rooms, 2)
	assert.Equal(t, "r1", got.Rooms[0].RoomID)
	assert.Equal(t, "Room 1", got.Rooms[0].Name)
	assert.Equal(t, "r2", got.Rooms[1].RoomID)
}

func TestGetUsers_Success(t *testing.T) {
	hs := newFakeHomeserver(nil, nil, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.GroupUsers{Users: []models.GroupUser{{UserID: "@u1:example.org", DisplayName: "U1"}}})
	})
	srv := httptest.NewServer(hs.router)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetUsers(context.Background(), "g9")

	require.NoError(t, err)
	require.Len(t, got.Users, 1)
	assert.Equal(t, "@u1:example.org", got.Users[0].UserID)
	assert.Equal(t, []string{"g9"}, hs.gotGroupIDs)
}

func TestGetJoinedGroups_Success(t *testing.T) {
	hs := newFakeHomeserver(nil, nil, nil)
	srv := httptest.NewServer(hs.router)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetJoinedGroups(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"g1", "g2"}, got)
}

func TestGetSummary_NoTokenHeaderWhenEmpty(t *testing.T) {
	hs := newFakeHomeserver(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.GroupSummaryResponse{})
	}, nil, nil)
	srv := httptest.NewServer(hs.router)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("")
	_, err := a.GetSummary(context.Background(), "g1")

	require.NoError(t, err)
	assert.Equal(t, []string{""}, hs.gotTokens)
}

func TestGetSummary_TraceIDHeader(t *testing.T) {
	var gotTraceIDs []string
	hs := newFakeHomeserver(func(w http.ResponseWriter, r *http.Request) {
		gotTraceIDs = append(gotTraceIDs, r.Header.Get(traceIDHeader))
		writeJSON(w, http.StatusOK, models.GroupSummaryResponse{})
	}, nil, nil)
	srv := httptest.NewServer(hs.router)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	_, err := a.GetSummary(utils.WithTraceID(context.Background(), "trace-1"), "g1")
	require.NoError(t, err)
	_, err = a.GetSummary(context.Background(), "g1")
	require.NoError(t, err)

	assert.Equal(t, []string{"trace-1", ""}, gotTraceIDs)
}

// ── error mapping ────────────────────────────────────────────────────────────

func TestGroupResource_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		sentinel   error
		errCode    string
		softLogout bool
		consentURI string
		message    string
	}{
		{
			name:       "unknown token with soft logout",
			status:     http.StatusUnauthorized,
			body:       `{"errcode":"M_UNKNOWN_TOKEN","error":"Invalid macaroon passed.","soft_logout":true}`,
			sentinel:   ErrUnauthorized,
			errCode:    ErrCodeUnknownToken,
			softLogout: true,
			message:    "Invalid macaroon passed.",
		},
		{
			name:       "consent not given",
			status:     http.StatusForbidden,
			body:       `{"errcode":"M_CONSENT_NOT_GIVEN","error":"accept the policy","consent_uri":"https://hs/consent"}`,
			sentinel:   ErrForbidden,
			errCode:    ErrCodeConsentNotGiven,
			consentURI: "https://hs/consent",
			message:    "accept the policy",
		},
		{
			name:     "not found",
			status:   http.StatusNotFound,
			body:     `{"errcode":"M_NOT_FOUND","error":"Group does not exist"}`,
			sentinel: ErrNotFound,
			errCode:  ErrCodeNotFound,
			message:  "Group does not exist",
		},
		{
			name:     "plain text body",
			status:   http.StatusBadGateway,
			body:     "upstream down",
			sentinel: ErrBadGateway,
			message:  "upstream down",
		},
		{
			name:     "empty body",
			status:   http.StatusServiceUnavailable,
			sentinel: ErrUnexpectedStatus,
			message:  http.StatusText(http.StatusServiceUnavailable),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hs := newFakeHomeserver(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, nil, nil)
			srv := httptest.NewServer(hs.router)
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.GetSummary(context.Background(), "g1")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)

			var srvErr *ServerError
			require.True(t, errors.As(err, &srvErr))
			assert.Equal(t, tt.status, srvErr.StatusCode)
			assert.Equal(t, tt.errCode, srvErr.ErrCode)
			assert.Equal(t, tt.softLogout, srvErr.SoftLogout)
			assert.Equal(t, tt.consentURI, srvErr.ConsentURI)
			assert.Equal(t, tt.message, srvErr.Message)
		})
	}
}

func TestGetSummary_ContextCancelled(t *testing.T) {
	hs := newFakeHomeserver(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.GroupSummaryResponse{})
	}, nil, nil)
	srv := httptest.NewServer(hs.router)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetSummary(ctx, "g1")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, hs.gotGroupIDs)
}
