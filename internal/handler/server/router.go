package server

import (
	"net/http"

	"github.com/bagdasarian/league-picks/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /teams", h.ListTeams)
	mux.HandleFunc("GET /teams/{teamId}", h.GetTeam)

	mux.HandleFunc("GET /leagues", h.RequireUser(h.ListLeagues))
	mux.HandleFunc("POST /leagues", h.RequireUser(h.JoinLeague))
	mux.HandleFunc("POST /leagues/new", h.RequireUser(h.CreateLeague))
	mux.HandleFunc("GET /leagues/{leagueId}", h.RequireUser(h.GetLeague))
	mux.HandleFunc("POST /leagues/{leagueId}", h.RequireUser(h.LeagueAction))
	mux.HandleFunc("POST /leagues/{leagueId}/votes", h.RequireUser(h.CastVote))
}
