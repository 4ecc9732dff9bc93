package mocks

import (
	"context"

	"github.com/bagdasarian/league-picks/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockLeagueRepository struct {
	mock.Mock
}

func (m *MockLeagueRepository) CreateWithAdmin(ctx context.Context, league *domain.League, adminID string) error {
	args := m.Called(ctx, league, adminID)
	return args.Error(0)
}

func (m *MockLeagueRepository) GetByIDForMember(ctx context.Context, id string, userID string) (*domain.League, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.League), args.Error(1)
}

func (m *MockLeagueRepository) GetByInviteCode(ctx context.Context, inviteCode string) (*domain.League, error) {
	args := m.Called(ctx, inviteCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.League), args.Error(1)
}

func (m *MockLeagueRepository) ListByMember(ctx context.Context, userID string) ([]*domain.LeagueListItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LeagueListItem), args.Error(1)
}

func (m *MockLeagueRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLeagueRepository) GetMembership(ctx context.Context, leagueID string, userID string) (*domain.Membership, error) {
	args := m.Called(ctx, leagueID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Membership), args.Error(1)
}

func (m *MockLeagueRepository) AddMember(ctx context.Context, leagueID string, userID string) (bool, error) {
	args := m.Called(ctx, leagueID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLeagueRepository) RemoveMember(ctx context.Context, leagueID string, userID string) (int64, error) {
	args := m.Called(ctx, leagueID, userID)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) AddRole(ctx context.Context, userID string, role string) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

func (m *MockUserRepository) HasRole(ctx context.Context, userID string, role string) (bool, error) {
	args := m.Called(ctx, userID, role)
	return args.Bool(0), args.Error(1)
}

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Create(ctx context.Context, team *domain.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) ListActive(ctx context.Context) ([]*domain.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Team), args.Error(1)
}

type MockVoteRepository struct {
	mock.Mock
}

func (m *MockVoteRepository) Upsert(ctx context.Context, vote *domain.Vote) error {
	args := m.Called(ctx, vote)
	return args.Error(0)
}

func (m *MockVoteRepository) ListByUserAndLeague(ctx context.Context, userID string, leagueID string) ([]*domain.Vote, error) {
	args := m.Called(ctx, userID, leagueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Vote), args.Error(1)
}
