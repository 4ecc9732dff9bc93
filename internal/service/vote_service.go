package service

import (
	"context"

	"github.com/bagdasarian/league-picks/internal/domain"
)

type VoteService interface {
	CastVote(ctx context.Context, userID, leagueID, teamID string, round int) (*domain.Vote, error)
	ListVotes(ctx context.Context, userID, leagueID string) ([]*domain.Vote, error)
}
