package repository

import (
	"context"

	"github.com/bagdasarian/league-picks/internal/domain"
)

type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	GetByName(ctx context.Context, name string) (*domain.Team, error)
	ListActive(ctx context.Context) ([]*domain.Team, error)
}
