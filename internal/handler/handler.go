package handler

import (
	"github.com/bagdasarian/league-picks/internal/logger"
	"github.com/bagdasarian/league-picks/internal/service"
	"github.com/bagdasarian/league-picks/internal/session"
	"github.com/go-playground/form/v4"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	leagueService service.LeagueService
	teamService   service.TeamService
	voteService   service.VoteService
	sessions      *session.Manager
	log           *logger.Logger
	validate      *validator.Validate
	formDecoder   *form.Decoder
}

func NewHandler(
	leagueService service.LeagueService,
	teamService service.TeamService,
	voteService service.VoteService,
	sessions *session.Manager,
	log *logger.Logger,
) *Handler {
	return &Handler{
		leagueService: leagueService,
		teamService:   teamService,
		voteService:   voteService,
		sessions:      sessions,
		log:           log,
		validate:      newFormValidator(),
		formDecoder:   form.NewDecoder(),
	}
}
