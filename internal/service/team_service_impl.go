package service

import (
	"context"

	"github.com/bagdasarian/league-picks/internal/domain"
	"github.com/bagdasarian/league-picks/internal/repository"
)

type teamService struct {
	teamRepo repository.TeamRepository
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(teamRepo repository.TeamRepository) TeamService {
	return &teamService{teamRepo: teamRepo}
}

func (s *teamService) GetTeam(ctx context.Context, id string) (*domain.Team, error) {
	return s.teamRepo.GetByID(ctx, id)
}

func (s *teamService) GetTeamByName(ctx context.Context, name string) (*domain.Team, error) {
	return s.teamRepo.GetByName(ctx, name)
}

// ListActiveTeams возвращает активные команды, отсортированные по имени
func (s *teamService) ListActiveTeams(ctx context.Context) ([]*domain.Team, error) {
	return s.teamRepo.ListActive(ctx)
}
