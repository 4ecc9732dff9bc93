package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/bagdasarian/league-picks/internal/domain"
	"github.com/google/uuid"
)

type voteRepository struct {
	executor DBExecutor
}

func NewVoteRepository(db *sql.DB) *voteRepository {
	return &voteRepository{executor: db}
}

// Upsert сохраняет выбор пользователя на раунд. Повторный голос за тот же раунд
// в той же лиге заменяет команду.
func (r *voteRepository) Upsert(ctx context.Context, vote *domain.Vote) error {
	if vote.ID == "" {
		vote.ID = uuid.NewString()
	}

	query := `
		INSERT INTO votes (id, user_id, league_id, team_id, round, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, league_id, round) DO UPDATE
		SET team_id = EXCLUDED.team_id, created_at = EXCLUDED.created_at
		RETURNING id, created_at
	`

	err := r.executor.QueryRowContext(
		ctx,
		query,
		vote.ID,
		vote.UserID,
		vote.LeagueID,
		vote.TeamID,
		vote.Round,
		time.Now().UTC(),
	).Scan(&vote.ID, &vote.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewNotFoundError("league or team")
		}
		return err
	}

	return nil
}

func (r *voteRepository) ListByUserAndLeague(ctx context.Context, userID string, leagueID string) ([]*domain.Vote, error) {
	query := `
		SELECT id, user_id, league_id, team_id, round, created_at
		FROM votes
		WHERE user_id = $1 AND league_id = $2
		ORDER BY round
	`

	rows, err := r.executor.QueryContext(ctx, query, userID, leagueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	votes := make([]*domain.Vote, 0)
	for rows.Next() {
		vote := &domain.Vote{}
		err := rows.Scan(
			&vote.ID,
			&vote.UserID,
			&vote.LeagueID,
			&vote.TeamID,
			&vote.Round,
			&vote.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		votes = append(votes, vote)
	}

	return votes, rows.Err()
}
