// Package initializer builds the dependency container: logger, database
// connection, schema migrations and the unit of work.
package initializer

import (
	"fmt"

	"github.com/paisabank/paisabank/infra"
	infrarepo "github.com/paisabank/paisabank/infra/repository"
	"github.com/paisabank/paisabank/pkg/config"
)

// InitializeDependencies wires all application dependencies from the
// loaded configuration.
func InitializeDependencies(cfg *config.App) (*config.Deps, error) {
	logger := setupLogger(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.DB.MigrationsPath != "" {
		logger.Info("Applying migrations", "path", cfg.DB.MigrationsPath)
		if err := infra.RunMigrations(db, cfg.DB.MigrationsPath); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	return &config.Deps{
		Uow:    infrarepo.NewUoW(db),
		Logger: logger,
		Config: cfg,
	}, nil
}
