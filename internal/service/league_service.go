package service

import (
	"context"

	"github.com/bagdasarian/league-picks/internal/domain"
)

type LeagueService interface {
	CreateLeague(ctx context.Context, name string, userID string) (*domain.League, error)
	GetLeague(ctx context.Context, id string, userID string) (*domain.League, error)
	ListLeagues(ctx context.Context, userID string) ([]*domain.LeagueListItem, error)
	DeleteLeague(ctx context.Context, id string, userID string) error
	JoinLeague(ctx context.Context, inviteCode string, userID string) (*domain.League, error)
	LeaveLeague(ctx context.Context, id string, userID string) error
}
