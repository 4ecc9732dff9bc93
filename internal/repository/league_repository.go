package repository

import (
	"context"

	"github.com/bagdasarian/league-picks/internal/domain"
)

type LeagueRepository interface {
	// CreateWithAdmin сохраняет лигу и членство создателя (admin) в одной транзакции
	CreateWithAdmin(ctx context.Context, league *domain.League, adminID string) error
	GetByIDForMember(ctx context.Context, id string, userID string) (*domain.League, error)
	GetByInviteCode(ctx context.Context, inviteCode string) (*domain.League, error)
	ListByMember(ctx context.Context, userID string) ([]*domain.LeagueListItem, error)
	Delete(ctx context.Context, id string) error
	GetMembership(ctx context.Context, leagueID string, userID string) (*domain.Membership, error)
	AddMember(ctx context.Context, leagueID string, userID string) (bool, error)
	RemoveMember(ctx context.Context, leagueID string, userID string) (int64, error)
}
