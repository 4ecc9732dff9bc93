package server

import (
	"context"
	"net/http"

	"github.com/bagdasarian/league-picks/internal/config"
	"github.com/bagdasarian/league-picks/internal/handler"
	"github.com/bagdasarian/league-picks/internal/logger"
)

type Server struct {
	handler *handler.Handler
	server  *http.Server
	log     *logger.Logger
}

func NewServer(h *handler.Handler, cfg config.HTTPConfig, log *logger.Logger) *Server {
	mux := http.NewServeMux()
	SetupRoutes(mux, h)

	return &Server{
		handler: h,
		log:     log,
		server: &http.Server{
			Addr:         cfg.Addr,
			Handler:      h.WithLogging(mux),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) Start() error {
	s.log.Infow("server starting", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.log.Info("server stopped")
	return nil
}
