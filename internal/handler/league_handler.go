package handler

import "net/http"

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	leagues, err := h.leagueService.ListLeagues(r.Context(), currentUserID(r))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, LeagueListResponse{
		Leagues: domainLeagueItemsToHTTP(leagues),
	})
}

func (h *Handler) CreateLeague(w http.ResponseWriter, r *http.Request) {
	var form CreateLeagueForm
	if err := h.decodeForm(r, &form); err != nil {
		h.handleError(w, r, err)
		return
	}

	userID := currentUserID(r)
	league, err := h.leagueService.CreateLeague(r.Context(), form.LeagueName, userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log.WithUser(userID).Infow("league created", "league_id", league.ID)
	http.Redirect(w, r, "/leagues/"+league.ID, http.StatusSeeOther)
}

func (h *Handler) JoinLeague(w http.ResponseWriter, r *http.Request) {
	var form JoinLeagueForm
	if err := h.decodeForm(r, &form); err != nil {
		h.handleError(w, r, err)
		return
	}

	league, err := h.leagueService.JoinLeague(r.Context(), form.InviteCode, currentUserID(r))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	http.Redirect(w, r, "/leagues/"+league.ID, http.StatusSeeOther)
}

// GetLeague отдает лигу с участниками, активными командами и голосами текущего пользователя
func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	leagueID := r.PathValue("leagueId")
	userID := currentUserID(r)

	league, err := h.leagueService.GetLeague(r.Context(), leagueID, userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	teams, err := h.teamService.ListActiveTeams(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	votes, err := h.voteService.ListVotes(r.Context(), userID, leagueID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, LeagueDetailsResponse{
		League: domainLeagueToHTTP(league),
		Teams:  domainTeamsToHTTP(teams),
		Votes:  domainVotesToHTTP(votes),
	})
}

// LeagueAction обрабатывает кнопки "delete" и "leave" на странице лиги.
// Без выбранного действия просто возвращает к списку лиг.
func (h *Handler) LeagueAction(w http.ResponseWriter, r *http.Request) {
	var form LeagueActionForm
	if err := h.decodeForm(r, &form); err != nil {
		h.handleError(w, r, err)
		return
	}

	leagueID := r.PathValue("leagueId")
	userID := currentUserID(r)

	switch {
	case form.Delete == "true":
		if err := h.leagueService.DeleteLeague(r.Context(), leagueID, userID); err != nil {
			h.handleError(w, r, err)
			return
		}
		h.log.WithUser(userID).Infow("league deleted", "league_id", leagueID)
	case form.Leave == "true":
		if err := h.leagueService.LeaveLeague(r.Context(), leagueID, userID); err != nil {
			h.handleError(w, r, err)
			return
		}
	}

	http.Redirect(w, r, "/leagues", http.StatusSeeOther)
}
