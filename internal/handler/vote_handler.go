package handler

import "net/http"

func (h *Handler) CastVote(w http.ResponseWriter, r *http.Request) {
	var form VoteForm
	if err := h.decodeForm(r, &form); err != nil {
		h.handleError(w, r, err)
		return
	}

	leagueID := r.PathValue("leagueId")
	if _, err := h.voteService.CastVote(r.Context(), currentUserID(r), leagueID, form.TeamID, form.Round); err != nil {
		h.handleError(w, r, err)
		return
	}

	http.Redirect(w, r, "/leagues/"+leagueID, http.StatusSeeOther)
}
