package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bagdasarian/league-picks/internal/domain"
	"github.com/google/uuid"
)

type leagueRepository struct {
	db *sql.DB
}

func NewLeagueRepository(db *sql.DB) *leagueRepository {
	return &leagueRepository{db: db}
}

func (r *leagueRepository) CreateWithAdmin(ctx context.Context, league *domain.League, adminID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if league.ID == "" {
		league.ID = uuid.NewString()
	}

	query := `
		INSERT INTO leagues (id, name, invite_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING created_at, updated_at
	`

	now := time.Now().UTC()
	err = tx.QueryRowContext(ctx, query, league.ID, league.Name, league.InviteCode, now).
		Scan(&league.CreatedAt, &league.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("league invite code %q: %w", league.InviteCode, domain.ErrAlreadyExists)
		}
		return err
	}

	memberQuery := `
		INSERT INTO league_members (user_id, league_id, is_admin, joined_at)
		VALUES ($1, $2, TRUE, $3)
	`
	if _, err = tx.ExecContext(ctx, memberQuery, adminID, league.ID, now); err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewNotFoundError("user with id " + adminID)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	league.Members = []domain.LeagueMember{
		{UserID: adminID, IsAdmin: true, JoinedAt: now},
	}
	return nil
}

func (r *leagueRepository) GetByIDForMember(ctx context.Context, id string, userID string) (*domain.League, error) {
	query := `
		SELECT l.id, l.name, l.invite_code, l.created_at, l.updated_at
		FROM leagues l
		JOIN league_members lm ON lm.league_id = l.id
		WHERE l.id = $1 AND lm.user_id = $2
	`

	league := &domain.League{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&league.ID,
		&league.Name,
		&league.InviteCode,
		&league.CreatedAt,
		&league.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("league")
		}
		return nil, err
	}

	members, err := r.getMembers(ctx, league.ID)
	if err != nil {
		return nil, err
	}
	league.Members = members

	return league, nil
}

func (r *leagueRepository) getMembers(ctx context.Context, leagueID string) ([]domain.LeagueMember, error) {
	query := `
		SELECT lm.user_id, u.email, u.display_name, lm.is_admin, lm.joined_at
		FROM league_members lm
		JOIN users u ON u.id = lm.user_id
		WHERE lm.league_id = $1
		ORDER BY lm.joined_at, u.email
	`

	rows, err := r.db.QueryContext(ctx, query, leagueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]domain.LeagueMember, 0)
	for rows.Next() {
		var m domain.LeagueMember
		if err := rows.Scan(&m.UserID, &m.Email, &m.DisplayName, &m.IsAdmin, &m.JoinedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, rows.Err()
}

func (r *leagueRepository) GetByInviteCode(ctx context.Context, inviteCode string) (*domain.League, error) {
	query := `
		SELECT id, name, invite_code, created_at, updated_at
		FROM leagues
		WHERE invite_code = $1
	`

	league := &domain.League{}
	err := r.db.QueryRowContext(ctx, query, inviteCode).Scan(
		&league.ID,
		&league.Name,
		&league.InviteCode,
		&league.CreatedAt,
		&league.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("league")
		}
		return nil, err
	}

	return league, nil
}

func (r *leagueRepository) ListByMember(ctx context.Context, userID string) ([]*domain.LeagueListItem, error) {
	query := `
		SELECT l.id, l.name
		FROM leagues l
		JOIN league_members lm ON lm.league_id = l.id
		WHERE lm.user_id = $1
		ORDER BY l.updated_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*domain.LeagueListItem, 0)
	for rows.Next() {
		item := &domain.LeagueListItem{}
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// Delete удаляет лигу; членства и голоса удаляются каскадно
func (r *leagueRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM leagues WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.NewNotFoundError("league")
	}

	return nil
}

func (r *leagueRepository) GetMembership(ctx context.Context, leagueID string, userID string) (*domain.Membership, error) {
	query := `
		SELECT user_id, league_id, is_admin, joined_at
		FROM league_members
		WHERE league_id = $1 AND user_id = $2
	`

	m := &domain.Membership{}
	err := r.db.QueryRowContext(ctx, query, leagueID, userID).Scan(&m.UserID, &m.LeagueID, &m.IsAdmin, &m.JoinedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("membership")
		}
		return nil, err
	}

	return m, nil
}

// AddMember добавляет обычного участника. Повторное вступление ничего не меняет,
// в этом случае возвращается false.
func (r *leagueRepository) AddMember(ctx context.Context, leagueID string, userID string) (bool, error) {
	query := `
		INSERT INTO league_members (user_id, league_id, is_admin, joined_at)
		VALUES ($1, $2, FALSE, $3)
		ON CONFLICT (user_id, league_id) DO NOTHING
	`

	result, err := r.db.ExecContext(ctx, query, userID, leagueID, time.Now().UTC())
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.NewNotFoundError("league")
		}
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected == 1, nil
}

func (r *leagueRepository) RemoveMember(ctx context.Context, leagueID string, userID string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM league_members WHERE league_id = $1 AND user_id = $2`, leagueID, userID)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
