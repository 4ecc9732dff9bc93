package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/league-picks/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLeagueRepo(t *testing.T) (*leagueRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewLeagueRepository(db), mock
}

// TestLeagueRepository_CreateWithAdmin - лига и членство создателя пишутся в одной транзакции
func TestLeagueRepository_CreateWithAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("успешное создание лиги с администратором", func(t *testing.T) {
		repo, mock := setupLeagueRepo(t)
		now := time.Now()

		league := &domain.League{Name: "My League", InviteCode: "ABC123"}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO leagues").
			WithArgs(sqlmock.AnyArg(), "My League", "ABC123", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
		mock.ExpectExec("INSERT INTO league_members").
			WithArgs("user-1", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.CreateWithAdmin(ctx, league, "user-1")

		require.NoError(t, err)
		assert.NotEmpty(t, league.ID)
		assert.Equal(t, now, league.CreatedAt)
		require.Len(t, league.Members, 1)
		assert.Equal(t, "user-1", league.Members[0].UserID)
		assert.True(t, league.Members[0].IsAdmin)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: код приглашения уже занят", func(t *testing.T) {
		repo, mock := setupLeagueRepo(t)

		league := &domain.League{Name: "My League", InviteCode: "DUP"}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO leagues").
			WithArgs(sqlmock.AnyArg(), "My League", "DUP", sqlmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "leagues_invite_code_key"})
		mock.ExpectRollback()

		err := repo.CreateWithAdmin(ctx, league, "user-1")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrAlreadyExists))
		assert.Nil(t, league.Members)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка при создании членства откатывает лигу", func(t *testing.T) {
		repo, mock := setupLeagueRepo(t)
		now := time.Now()

		league := &domain.League{Name: "My League", InviteCode: "ABC123"}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO leagues").
			WithArgs(sqlmock.AnyArg(), "My League", "ABC123", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
		mock.ExpectExec("INSERT INTO league_members").
			WithArgs("ghost", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		mock.ExpectRollback()

		err := repo.CreateWithAdmin(ctx, league, "ghost")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: не удалось начать транзакцию", func(t *testing.T) {
		repo, mock := setupLeagueRepo(t)

		mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

		err := repo.CreateWithAdmin(ctx, &domain.League{Name: "x", InviteCode: "y"}, "user-1")

		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLeagueRepository_GetByIDForMember(t *testing.T) {
	ctx := context.Background()

	t.Run("участник получает лигу со списком участников", func(t *testing.T) {
		repo, mock := setupLeagueRepo(t)
		now := time.Now()

		mock.ExpectQuery("SELECT l.id, l.name, l.invite_code").
			WithArgs("league-1", "user-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "invite_code", "created_at", "updated_at"}).
				AddRow("league-1", "My League", "ABC123", now, now))
		mock.ExpectQuery("SELECT lm.user_id, u.email").
			WithArgs("league-1").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "email", "display_name", "is_admin", "joined_at"}).
				AddRow("user-1", "daryl@example.com", "Daryl", true, now).
				AddRow("user-2", "marina@example.com", "Marina", false, now))

		league, err := repo.GetByIDForMember(ctx, "league-1", "user-1")

		require.NoError(t, err)
		assert.Equal(t, "My League", league.Name)
		assert.Equal(t, "ABC123", league.InviteCode)
		require.Len(t, league.Members, 2)
		assert.True(t, league.Members[0].IsAdmin)
		assert.Equal(t, "marina@example.com", league.Members[1].Email)
		assert.False(t, league.Members[1].IsAdmin)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("не участник получает NOT_FOUND", func(t *testing.T) {
		repo, mock := setupLeagueRepo(t)

		mock.ExpectQuery("SELECT l.id, l.name, l.invite_code").
			WithArgs("league-1", "stranger").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "invite_code", "created_at", "updated_at"}))

		league, err := repo.GetByIDForMember(ctx, "league-1", "stranger")

		require.Error(t, err)
		assert.Nil(t, league)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLeagueRepository_GetByInviteCode(t *testing.T) {
	ctx := context.Background()

	t.Run("лига найдена", func(t *testing.T) {
		repo, mock := setupLeagueRepo(t)
		now := time.Now()

		mock.ExpectQuery("SELECT id, name, invite_code").
			WithArgs("ABC123").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "invite_code", "created_at", "updated_at"}).
				AddRow("league-1", "My League", "ABC123", now, now))

		league, err := repo.GetByInviteCode(ctx, "ABC123")

		require.NoError(t, err)
		assert.Equal(t, "league-1", league.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("неизвестный код", func(t *testing.T) {
		repo, mock := setupLeagueRepo(t)

		mock.ExpectQuery("SELECT id, name, invite_code").
			WithArgs("NOPE").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "invite_code", "created_at", "updated_at"}))

		league, err := repo.GetByInviteCode(ctx, "NOPE")

		assert.Nil(t, league)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLeagueRepository_ListByMember(t *testing.T) {
	repo, mock := setupLeagueRepo(t)

	mock.ExpectQuery("SELECT l.id, l.name\\s+FROM leagues l").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow("league-2", "Newer").
			AddRow("league-1", "Older"))

	items, err := repo.ListByMember(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Newer", items[0].Name)
	assert.Equal(t, "Older", items[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeagueRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("успешное удаление", func(t *testing.T) {
		repo, mock := setupLeagueRepo(t)

		mock.ExpectExec("DELETE FROM leagues").
			WithArgs("league-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(ctx, "league-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("лига не найдена", func(t *testing.T) {
		repo, mock := setupLeagueRepo(t)

		mock.ExpectExec("DELETE FROM leagues").
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, "missing")

		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLeagueRepository_Membership(t *testing.T) {
	ctx := context.Background()

	t.Run("новое членство", func(t *testing.T) {
		repo, mock := setupLeagueRepo(t)

		mock.ExpectExec("INSERT INTO league_members").
			WithArgs("user-2", "league-1", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		created, err := repo.AddMember(ctx, "league-1", "user-2")

		require.NoError(t, err)
		assert.True(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("повторное вступление ничего не создает", func(t *testing.T) {
		repo, mock := setupLeagueRepo(t)

		mock.ExpectExec("INSERT INTO league_members").
			WithArgs("user-2", "league-1", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))

		created, err := repo.AddMember(ctx, "league-1", "user-2")

		require.NoError(t, err)
		assert.False(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("удаляется только строка вызывающего", func(t *testing.T) {
		repo, mock := setupLeagueRepo(t)

		mock.ExpectExec("DELETE FROM league_members WHERE league_id = \\$1 AND user_id = \\$2").
			WithArgs("league-1", "user-2").
			WillReturnResult(sqlmock.NewResult(0, 1))

		removed, err := repo.RemoveMember(ctx, "league-1", "user-2")

		require.NoError(t, err)
		assert.Equal(t, int64(1), removed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("членство администратора", func(t *testing.T) {
		repo, mock := setupLeagueRepo(t)
		now := time.Now()

		mock.ExpectQuery("SELECT user_id, league_id, is_admin").
			WithArgs("league-1", "user-1").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "league_id", "is_admin", "joined_at"}).
				AddRow("user-1", "league-1", true, now))

		m, err := repo.GetMembership(ctx, "league-1", "user-1")

		require.NoError(t, err)
		assert.True(t, m.IsAdmin)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("членства нет", func(t *testing.T) {
		repo, mock := setupLeagueRepo(t)

		mock.ExpectQuery("SELECT user_id, league_id, is_admin").
			WithArgs("league-1", "user-9").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "league_id", "is_admin", "joined_at"}))

		m, err := repo.GetMembership(ctx, "league-1", "user-9")

		assert.Nil(t, m)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
