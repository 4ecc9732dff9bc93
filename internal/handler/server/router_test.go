package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/bagdasarian/league-picks/internal/config"
	"github.com/bagdasarian/league-picks/internal/domain"
	"github.com/bagdasarian/league-picks/internal/handler"
	"github.com/bagdasarian/league-picks/internal/logger"
	"github.com/bagdasarian/league-picks/internal/mocks"
	"github.com/bagdasarian/league-picks/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupServer(t *testing.T) (http.Handler, *mocks.MockLeagueService, *session.Manager) {
	t.Helper()

	leagues := new(mocks.MockLeagueService)
	sessions := session.NewManager(config.SessionConfig{Secret: "test", TTL: time.Hour, CookieName: "__session"})
	h := handler.NewHandler(leagues, new(mocks.MockTeamService), new(mocks.MockVoteService), sessions, logger.Nop())
	srv := NewServer(h, config.HTTPConfig{Addr: ":0"}, logger.Nop())
	return srv.Handler(), leagues, sessions
}

func TestRouter(t *testing.T) {
	t.Run("health", func(t *testing.T) {
		srv, _, _ := setupServer(t)

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("лиги требуют сессию", func(t *testing.T) {
		srv, _, _ := setupServer(t)

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leagues", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("POST /leagues/new попадает в создание лиги, а не в действия с лигой", func(t *testing.T) {
		srv, leagues, sessions := setupServer(t)

		leagues.On("CreateLeague", mock.Anything, "My League", "user-1").
			Return(&domain.League{ID: "league-1"}, nil).Once()

		form := url.Values{"leagueName": {"My League"}}
		req := httptest.NewRequest(http.MethodPost, "/leagues/new", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		token, err := sessions.Issue("user-1")
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/leagues/league-1", rec.Header().Get("Location"))
		leagues.AssertExpectations(t)
	})

	t.Run("путь лиги передается в обработчик", func(t *testing.T) {
		srv, leagues, sessions := setupServer(t)

		leagues.On("LeaveLeague", mock.Anything, "league-42", "user-1").Return(nil).Once()

		form := url.Values{"leave": {"true"}}
		req := httptest.NewRequest(http.MethodPost, "/leagues/league-42", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		cookie, err := sessions.Cookie("user-1")
		require.NoError(t, err)
		req.AddCookie(cookie)

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		leagues.AssertExpectations(t)
	})
}
