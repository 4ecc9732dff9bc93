package repository

import (
	"context"

	"github.com/bagdasarian/league-picks/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	AddRole(ctx context.Context, userID string, role string) error
	HasRole(ctx context.Context, userID string, role string) (bool, error)
}
