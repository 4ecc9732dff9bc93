package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bagdasarian/league-picks/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHandler_ListTeams(t *testing.T) {
	h, deps := newTestHandler()

	deps.teams.On("ListActiveTeams", mock.Anything).Return([]*domain.Team{
		{ID: "team-1", Name: "Arsenal", ShortName: "ARS", Active: true},
		{ID: "team-2", Name: "Chelsea", ShortName: "CHE", Active: true},
	}, nil).Once()

	rec := httptest.NewRecorder()
	h.ListTeams(rec, httptest.NewRequest(http.MethodGet, "/teams", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[TeamListResponse](t, rec)
	assert.Len(t, body.Teams, 2)
	assert.Equal(t, "Arsenal", body.Teams[0].Name)
}

func TestHandler_ListTeamsByName(t *testing.T) {
	t.Run("команда найдена по имени", func(t *testing.T) {
		h, deps := newTestHandler()

		deps.teams.On("GetTeamByName", mock.Anything, "Arsenal").
			Return(&domain.Team{ID: "team-1", Name: "Arsenal", Active: true}, nil).Once()

		rec := httptest.NewRecorder()
		h.ListTeams(rec, httptest.NewRequest(http.MethodGet, "/teams?name=Arsenal", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[TeamListResponse](t, rec)
		require.Len(t, body.Teams, 1)
		assert.Equal(t, "team-1", body.Teams[0].ID)
		deps.teams.AssertNotCalled(t, "ListActiveTeams", mock.Anything)
	})

	t.Run("неизвестное имя дает пустой список", func(t *testing.T) {
		h, deps := newTestHandler()

		deps.teams.On("GetTeamByName", mock.Anything, "Nowhere FC").
			Return(nil, domain.NewNotFoundError("team with name Nowhere FC")).Once()

		rec := httptest.NewRecorder()
		h.ListTeams(rec, httptest.NewRequest(http.MethodGet, "/teams?name=Nowhere+FC", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[TeamListResponse](t, rec)
		assert.Empty(t, body.Teams)
	})
}

func TestHandler_GetTeam(t *testing.T) {
	t.Run("команда найдена", func(t *testing.T) {
		h, deps := newTestHandler()

		deps.teams.On("GetTeam", mock.Anything, "team-1").
			Return(&domain.Team{ID: "team-1", Name: "Arsenal", PrimaryColor: "#EF0107", Active: true}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/teams/team-1", nil)
		req.SetPathValue("teamId", "team-1")
		rec := httptest.NewRecorder()
		h.GetTeam(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[TeamResponse](t, rec)
		assert.Equal(t, "#EF0107", body.PrimaryColor)
	})

	t.Run("404", func(t *testing.T) {
		h, deps := newTestHandler()

		deps.teams.On("GetTeam", mock.Anything, "missing").
			Return(nil, domain.NewNotFoundError("team with id missing")).Once()

		req := httptest.NewRequest(http.MethodGet, "/teams/missing", nil)
		req.SetPathValue("teamId", "missing")
		rec := httptest.NewRecorder()
		h.GetTeam(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
