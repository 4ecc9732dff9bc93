package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bagdasarian/league-picks/internal/domain"
	"github.com/bagdasarian/league-picks/internal/repository"
)

const maxInviteCodeAttempts = 5

type leagueService struct {
	leagueRepo     repository.LeagueRepository
	userRepo       repository.UserRepository
	generateInvite InviteCodeGenerator
}

// NewLeagueService создает новый экземпляр LeagueService
func NewLeagueService(
	leagueRepo repository.LeagueRepository,
	userRepo repository.UserRepository,
	generateInvite InviteCodeGenerator,
) LeagueService {
	if generateInvite == nil {
		generateInvite = GenerateInviteCode
	}
	return &leagueService{
		leagueRepo:     leagueRepo,
		userRepo:       userRepo,
		generateInvite: generateInvite,
	}
}

// CreateLeague создает лигу, создатель становится единственным участником и администратором.
// При коллизии кода приглашения код генерируется заново.
func (s *leagueService) CreateLeague(ctx context.Context, name string, userID string) (*domain.League, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("leagueName", "leagueName is required")
	}

	for attempt := 0; attempt < maxInviteCodeAttempts; attempt++ {
		code, err := s.generateInvite()
		if err != nil {
			return nil, fmt.Errorf("generate invite code: %w", err)
		}

		league := &domain.League{Name: name, InviteCode: code}
		err = s.leagueRepo.CreateWithAdmin(ctx, league, userID)
		if errors.Is(err, domain.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return league, nil
	}

	return nil, fmt.Errorf("no unique invite code after %d attempts", maxInviteCodeAttempts)
}

// GetLeague возвращает лигу только участнику
func (s *leagueService) GetLeague(ctx context.Context, id string, userID string) (*domain.League, error) {
	return s.leagueRepo.GetByIDForMember(ctx, id, userID)
}

func (s *leagueService) ListLeagues(ctx context.Context, userID string) ([]*domain.LeagueListItem, error) {
	return s.leagueRepo.ListByMember(ctx, userID)
}

// DeleteLeague: администратор приложения удаляет любую лигу, администратор лиги - только свою.
// Для не участника лига считается несуществующей.
func (s *leagueService) DeleteLeague(ctx context.Context, id string, userID string) error {
	isAppAdmin, err := s.userRepo.HasRole(ctx, userID, domain.RoleAdmin)
	if err != nil {
		return err
	}
	if isAppAdmin {
		return s.leagueRepo.Delete(ctx, id)
	}

	membership, err := s.leagueRepo.GetMembership(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewNotFoundError("league")
		}
		return err
	}

	if !membership.IsAdmin {
		return domain.ErrForbidden
	}

	return s.leagueRepo.Delete(ctx, id)
}

// JoinLeague добавляет пользователя в лигу по коду приглашения.
// Повторное вступление не создает второго членства.
func (s *leagueService) JoinLeague(ctx context.Context, inviteCode string, userID string) (*domain.League, error) {
	inviteCode = strings.TrimSpace(inviteCode)
	if inviteCode == "" {
		return nil, domain.NewValidationError("inviteCode", "inviteCode is required")
	}

	league, err := s.leagueRepo.GetByInviteCode(ctx, inviteCode)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidInviteCode
		}
		return nil, err
	}

	if _, err := s.leagueRepo.AddMember(ctx, league.ID, userID); err != nil {
		return nil, err
	}

	return league, nil
}

// LeaveLeague удаляет только членство вызывающего пользователя
func (s *leagueService) LeaveLeague(ctx context.Context, id string, userID string) error {
	_, err := s.leagueRepo.RemoveMember(ctx, id, userID)
	return err
}
