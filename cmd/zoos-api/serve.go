package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/zoos-api/internal/database"
	"github.com/deppfellow/zoos-api/internal/handler"
	"github.com/deppfellow/zoos-api/internal/repository"
	"github.com/deppfellow/zoos-api/internal/router"
	"github.com/deppfellow/zoos-api/internal/server"
	"github.com/deppfellow/zoos-api/internal/service"
	"github.com/spf13/cobra"
)

const (
	shutdownTimeout = 10 * time.Second
	migrateTimeout  = time.Minute
)

func newServeCommand() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", true, "apply pending migrations before serving")

	return cmd
}

func serve(ctx context.Context, migrate bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, log, loggerService, err := bootstrap()
	if err != nil {
		return err
	}

	if migrate {
		migrateCtx, cancel := context.WithTimeout(ctx, migrateTimeout)
		err := database.Migrate(migrateCtx, log, cfg)
		cancel()
		if err != nil {
			log.Error().Err(err).Msg("failed to migrate database")
			loggerService.Shutdown()
			return err
		}
	}

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize server")
		loggerService.Shutdown()
		return err
	}

	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)
	handlers := handler.NewHandlers(srv, services)

	srv.SetupHTTPServer(router.NewRouter(srv, handlers))

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case err = <-serveErr:
		if err != nil {
			log.Error().Err(err).Msg("server stopped unexpectedly")
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
		log.Error().Err(shutdownErr).Msg("server forced to shutdown")
		if err == nil {
			err = shutdownErr
		}
	}

	if err == nil {
		log.Info().Msg("server exited properly")
	}
	return err
}
