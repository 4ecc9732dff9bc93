package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bagdasarian/league-picks/internal/config"
	"github.com/bagdasarian/league-picks/internal/db"
	"github.com/bagdasarian/league-picks/internal/handler"
	"github.com/bagdasarian/league-picks/internal/handler/server"
	"github.com/bagdasarian/league-picks/internal/logger"
	"github.com/bagdasarian/league-picks/internal/repository/postgres"
	"github.com/bagdasarian/league-picks/internal/service"
	"github.com/bagdasarian/league-picks/internal/session"
)

func main() {
	cfg := config.Load()

	log := logger.New("league-picks", cfg.Env)
	defer log.Sync()

	database := db.MustLoad(context.Background(), cfg)
	log.Info("Successfully connected to database!")
	defer database.Close()

	leagueRepo := postgres.NewLeagueRepository(database)
	userRepo := postgres.NewUserRepository(database)
	teamRepo := postgres.NewTeamRepository(database)
	voteRepo := postgres.NewVoteRepository(database)

	leagueService := service.NewLeagueService(leagueRepo, userRepo, service.GenerateInviteCode)
	teamService := service.NewTeamService(teamRepo)
	voteService := service.NewVoteService(voteRepo, leagueRepo, teamRepo)

	h := handler.NewHandler(leagueService, teamService, voteService, session.NewManager(cfg.Session), log)
	srv := server.NewServer(h, cfg.HTTP, log)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}
