package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bagdasarian/league-picks/internal/domain"
	"github.com/google/uuid"
)

type teamRepository struct {
	executor DBExecutor
}

func NewTeamRepository(db *sql.DB) *teamRepository {
	return &teamRepository{executor: db}
}

func NewTeamRepositoryWithTx(tx *sql.Tx) *teamRepository {
	return &teamRepository{executor: tx}
}

const teamColumns = `id, name, short_name, image_url, primary_color, active`

// Create вставляет команду; если команда с таким именем уже есть, обновляет её поля
func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	if team.ID == "" {
		team.ID = uuid.NewString()
	}

	query := `
		INSERT INTO teams (id, name, short_name, image_url, primary_color, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (name) DO UPDATE
		SET short_name = EXCLUDED.short_name,
			image_url = EXCLUDED.image_url,
			primary_color = EXCLUDED.primary_color,
			active = EXCLUDED.active
		RETURNING id
	`

	return r.executor.QueryRowContext(
		ctx,
		query,
		team.ID,
		team.Name,
		team.ShortName,
		team.ImageURL,
		team.PrimaryColor,
		team.Active,
	).Scan(&team.ID)
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	row := r.executor.QueryRowContext(ctx, `SELECT `+teamColumns+` FROM teams WHERE id = $1`, id)
	return scanTeam(row, "team with id "+id)
}

func (r *teamRepository) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	row := r.executor.QueryRowContext(ctx, `SELECT `+teamColumns+` FROM teams WHERE name = $1`, name)
	return scanTeam(row, "team with name "+name)
}

func (r *teamRepository) ListActive(ctx context.Context) ([]*domain.Team, error) {
	query := `
		SELECT ` + teamColumns + `
		FROM teams
		WHERE active = TRUE
		ORDER BY name ASC
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]*domain.Team, 0)
	for rows.Next() {
		team := &domain.Team{}
		err := rows.Scan(
			&team.ID,
			&team.Name,
			&team.ShortName,
			&team.ImageURL,
			&team.PrimaryColor,
			&team.Active,
		)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}

func scanTeam(row *sql.Row, resource string) (*domain.Team, error) {
	team := &domain.Team{}
	err := row.Scan(
		&team.ID,
		&team.Name,
		&team.ShortName,
		&team.ImageURL,
		&team.PrimaryColor,
		&team.Active,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError(resource)
		}
		return nil, err
	}
	return team, nil
}
