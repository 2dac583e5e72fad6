// Package server holds the process-wide resources every layer shares:
// configuration, loggers, the database pool and the HTTP server itself.
//
// Resources are created once in New, handed to repositories, services,
// handlers and middleware through *Server, and released in Shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/zoos-api/internal/config"
	"github.com/deppfellow/zoos-api/internal/database"
	"github.com/rs/zerolog"

	loggerPkg "github.com/deppfellow/zoos-api/internal/logger"
)

type Server struct {
	Config        *config.Config
	Logger        *zerolog.Logger
	LoggerService *loggerPkg.LoggerService
	DB            *database.Database

	httpServer  *http.Server
	stopWatcher context.CancelFunc
	watcherDone chan struct{}
}

// New connects to the database and, when configured, starts the
// background database health watcher.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	db, err := database.New(cfg, logger, loggerService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	server := &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		DB:            db,
	}

	if cfg.Observability.Watches("database") {
		server.startWatcher(db)
	}

	return server, nil
}

func (s *Server) startWatcher(p database.Pinger) {
	ctx, cancel := context.WithCancel(context.Background())
	s.stopWatcher = cancel
	s.watcherDone = make(chan struct{})

	checks := s.Config.Observability.HealthChecks
	watcherLogger := s.Logger.With().Str("component", "health_watcher").Logger()

	go func() {
		defer close(s.watcherDone)
		database.Watch(ctx, p, &watcherLogger, checks.Interval, checks.Timeout)
	}()
}

// SetupHTTPServer wraps handler in an http.Server with the configured
// address and timeouts.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start blocks serving HTTP. It returns nil once Shutdown has been called.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msgf("=== Web API Listening on http://localhost:%s ===", s.Config.Server.Port)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections, waits for in-flight requests until
// ctx expires, then stops the watcher, closes the pool and flushes APM data.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to shutdown HTTP server: %w", err))
		}
	}

	if s.stopWatcher != nil {
		s.stopWatcher()
		<-s.watcherDone
	}

	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database connection: %w", err))
		}
	}

	s.LoggerService.Shutdown()

	return errors.Join(errs...)
}
