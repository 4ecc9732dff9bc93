package mocks

import (
	"context"

	"github.com/bagdasarian/league-picks/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockLeagueService struct {
	mock.Mock
}

func (m *MockLeagueService) CreateLeague(ctx context.Context, name string, userID string) (*domain.League, error) {
	args := m.Called(ctx, name, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.League), args.Error(1)
}

func (m *MockLeagueService) GetLeague(ctx context.Context, id string, userID string) (*domain.League, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.League), args.Error(1)
}

func (m *MockLeagueService) ListLeagues(ctx context.Context, userID string) ([]*domain.LeagueListItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LeagueListItem), args.Error(1)
}

func (m *MockLeagueService) DeleteLeague(ctx context.Context, id string, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockLeagueService) JoinLeague(ctx context.Context, inviteCode string, userID string) (*domain.League, error) {
	args := m.Called(ctx, inviteCode, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.League), args.Error(1)
}

func (m *MockLeagueService) LeaveLeague(ctx context.Context, id string, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

type MockTeamService struct {
	mock.Mock
}

func (m *MockTeamService) GetTeam(ctx context.Context, id string) (*domain.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamService) GetTeamByName(ctx context.Context, name string) (*domain.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamService) ListActiveTeams(ctx context.Context) ([]*domain.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Team), args.Error(1)
}

type MockVoteService struct {
	mock.Mock
}

func (m *MockVoteService) CastVote(ctx context.Context, userID, leagueID, teamID string, round int) (*domain.Vote, error) {
	args := m.Called(ctx, userID, leagueID, teamID, round)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vote), args.Error(1)
}

func (m *MockVoteService) ListVotes(ctx context.Context, userID, leagueID string) ([]*domain.Vote, error) {
	args := m.Called(ctx, userID, leagueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Vote), args.Error(1)
}
