package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/bagdasarian/league-picks/internal/config"
	"github.com/bagdasarian/league-picks/internal/logger"
	"github.com/bagdasarian/league-picks/internal/mocks"
	"github.com/bagdasarian/league-picks/internal/session"
	"github.com/stretchr/testify/require"
)

type testDeps struct {
	leagues  *mocks.MockLeagueService
	teams    *mocks.MockTeamService
	votes    *mocks.MockVoteService
	sessions *session.Manager
}

func newTestHandler() (*Handler, testDeps) {
	deps := testDeps{
		leagues:  new(mocks.MockLeagueService),
		teams:    new(mocks.MockTeamService),
		votes:    new(mocks.MockVoteService),
		sessions: session.NewManager(config.SessionConfig{Secret: "test", TTL: time.Hour, CookieName: "__session"}),
	}
	h := NewHandler(deps.leagues, deps.teams, deps.votes, deps.sessions, logger.Nop())
	return h, deps
}

// newRequest собирает запрос с формой и cookie сессии (если userID не пустой)
func newRequest(t *testing.T, deps testDeps, method, target string, form url.Values, userID string) *http.Request {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	if userID != "" {
		cookie, err := deps.sessions.Cookie(userID)
		require.NoError(t, err)
		req.AddCookie(cookie)
	}
	return req
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}
