package repository

import (
	"context"

	"github.com/bagdasarian/league-picks/internal/domain"
)

type VoteRepository interface {
	Upsert(ctx context.Context, vote *domain.Vote) error
	ListByUserAndLeague(ctx context.Context, userID string, leagueID string) ([]*domain.Vote, error)
}
