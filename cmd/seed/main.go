package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bagdasarian/league-picks/internal/config"
	"github.com/bagdasarian/league-picks/internal/db"
	"github.com/bagdasarian/league-picks/internal/domain"
	"github.com/bagdasarian/league-picks/internal/logger"
	"github.com/bagdasarian/league-picks/internal/repository/postgres"
	"github.com/bagdasarian/league-picks/internal/service"
	"github.com/bagdasarian/league-picks/internal/session"
	"golang.org/x/crypto/bcrypt"
)

type seedUser struct {
	email       string
	displayName string
	password    string
}

var users = []seedUser{
	{email: "daryl@remix.run", displayName: "Daryl", password: "daryliscool"},
	{email: "marina@remix.run", displayName: "Marina", password: "marinaiscool"},
}

func main() {
	cfg := config.Load()
	log := logger.New("league-picks-seed", cfg.Env)
	defer log.Sync()

	ctx := context.Background()
	database := db.MustLoad(ctx, cfg)
	defer database.Close()

	if err := seed(ctx, database, session.NewManager(cfg.Session)); err != nil {
		log.Fatalw("seed failed", "error", err)
	}
	log.Info("Database has been seeded")
}

// seed очищает базу и заполняет её в одной транзакции; лига создается после коммита,
// потому что репозиторий лиг открывает собственную транзакцию
func seed(ctx context.Context, database *sql.DB, sessions *session.Manager) error {
	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// лиги удаляются вместе с участниками и голосами (ON DELETE CASCADE)
	if _, err := tx.ExecContext(ctx, `DELETE FROM leagues`); err != nil {
		return fmt.Errorf("failed to clean leagues: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("failed to clean users: %w", err)
	}

	userRepo := postgres.NewUserRepositoryWithTx(tx)
	teamRepo := postgres.NewTeamRepositoryWithTx(tx)

	created := make([]*domain.User, 0, len(users))
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), 10)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", u.email, err)
		}

		user := &domain.User{
			Email:        u.email,
			DisplayName:  u.displayName,
			PasswordHash: string(hash),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.email, err)
		}
		created = append(created, user)
	}

	if err := userRepo.AddRole(ctx, created[0].ID, domain.RoleAdmin); err != nil {
		return fmt.Errorf("failed to grant admin role: %w", err)
	}

	for _, team := range premierLeagueTeams {
		team := team
		if err := teamRepo.Create(ctx, &team); err != nil {
			return fmt.Errorf("failed to create team %s: %w", team.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}

	leagueService := service.NewLeagueService(
		postgres.NewLeagueRepository(database),
		postgres.NewUserRepository(database),
		nil,
	)
	league, err := leagueService.CreateLeague(ctx, "My League", created[0].ID)
	if err != nil {
		return fmt.Errorf("failed to create league: %w", err)
	}
	fmt.Printf("league %q invite code: %s\n", league.Name, league.InviteCode)

	for _, user := range created {
		token, err := sessions.Issue(user.ID)
		if err != nil {
			return fmt.Errorf("failed to issue session for %s: %w", user.Email, err)
		}
		fmt.Printf("%s session: %s\n", user.Email, token)
	}

	return nil
}
