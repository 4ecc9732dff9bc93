package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/bagdasarian/league-picks/internal/domain"
)

// ListTeams отдает активные команды; с параметром name ищет одну команду по имени
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	if name := strings.TrimSpace(r.URL.Query().Get("name")); name != "" {
		h.findTeamByName(w, r, name)
		return
	}

	teams, err := h.teamService.ListActiveTeams(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, TeamListResponse{Teams: domainTeamsToHTTP(teams)})
}

func (h *Handler) findTeamByName(w http.ResponseWriter, r *http.Request, name string) {
	team, err := h.teamService.GetTeamByName(r.Context(), name)
	if errors.Is(err, domain.ErrNotFound) {
		writeJSON(w, http.StatusOK, TeamListResponse{Teams: []TeamResponse{}})
		return
	}
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, TeamListResponse{Teams: domainTeamsToHTTP([]*domain.Team{team})})
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	team, err := h.teamService.GetTeam(r.Context(), r.PathValue("teamId"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamToHTTP(team))
}
