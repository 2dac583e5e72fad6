// Command zoos-api serves the zoos HTTP API and manages its schema.
//
//	zoos-api serve [--migrate=false]
//	zoos-api migrate
//
// Configuration is read from ZOOS_* environment variables, a .env file in
// the working directory and, if ZOOS_CONFIG is set, a YAML file.
package main

import (
	"fmt"
	"os"

	"github.com/deppfellow/zoos-api/internal/config"
	"github.com/deppfellow/zoos-api/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	serve := newServeCommand()

	root := &cobra.Command{
		Use:           config.ServiceName,
		Short:         "HTTP CRUD API for zoos",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.Flags().AddFlagSet(serve.Flags())

	root.AddCommand(serve, newMigrateCommand())
	return root
}

// bootstrap loads configuration and builds the process loggers. Errors are
// printed here since no logger exists yet.
func bootstrap() (*config.Config, *zerolog.Logger, *logger.LoggerService, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		return nil, nil, nil, err
	}

	loggerService := logger.NewLoggerService(&cfg.Observability)
	log := logger.NewLoggerWithService(&cfg.Observability, loggerService)

	return cfg, &log, loggerService, nil
}
