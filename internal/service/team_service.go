package service

import (
	"context"

	"github.com/bagdasarian/league-picks/internal/domain"
)

type TeamService interface {
	GetTeam(ctx context.Context, id string) (*domain.Team, error)
	GetTeamByName(ctx context.Context, name string) (*domain.Team, error)
	ListActiveTeams(ctx context.Context) ([]*domain.Team, error)
}
