package service

import (
	"context"
	"errors"

	"github.com/bagdasarian/league-picks/internal/domain"
	"github.com/bagdasarian/league-picks/internal/repository"
)

type voteService struct {
	voteRepo   repository.VoteRepository
	leagueRepo repository.LeagueRepository
	teamRepo   repository.TeamRepository
}

// NewVoteService создает новый экземпляр VoteService
func NewVoteService(
	voteRepo repository.VoteRepository,
	leagueRepo repository.LeagueRepository,
	teamRepo repository.TeamRepository,
) VoteService {
	return &voteService{
		voteRepo:   voteRepo,
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
	}
}

// CastVote сохраняет выбор команды на раунд. Голосовать может только участник лиги
// и только за активную команду; повторный голос за раунд заменяет предыдущий.
func (s *voteService) CastVote(ctx context.Context, userID, leagueID, teamID string, round int) (*domain.Vote, error) {
	if teamID == "" {
		return nil, domain.NewValidationError("teamId", "teamId is required")
	}
	if round < 1 {
		return nil, domain.NewValidationError("round", "round must be a positive number")
	}

	if _, err := s.leagueRepo.GetMembership(ctx, leagueID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError("league")
		}
		return nil, err
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("teamId", "team not found")
		}
		return nil, err
	}
	if !team.Active {
		return nil, domain.NewValidationError("teamId", "team is not active")
	}

	vote := &domain.Vote{
		UserID:   userID,
		LeagueID: leagueID,
		TeamID:   teamID,
		Round:    round,
	}
	if err := s.voteRepo.Upsert(ctx, vote); err != nil {
		return nil, err
	}

	return vote, nil
}

func (s *voteService) ListVotes(ctx context.Context, userID, leagueID string) ([]*domain.Vote, error) {
	return s.voteRepo.ListByUserAndLeague(ctx, userID, leagueID)
}
