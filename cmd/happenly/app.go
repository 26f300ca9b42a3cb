package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/lib/pq"

	"happenly/config"
	"happenly/internal/domain"
	"happenly/internal/repository/documents"
	"happenly/internal/repository/postgres"
	"happenly/internal/services"
)

// app holds the dependencies shared by every subcommand.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *sql.DB
}

// newApp loads config, builds the logger and opens a migrated database.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger := config.NewLogger(cfg, os.Stdout)
	slog.SetDefault(logger)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := postgres.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &app{cfg: cfg, logger: logger, db: db}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}

// eventService wires the document store, mapping repositories and event service.
func (a *app) eventService() (domain.EventService, domain.CategoryRepository) {
	store := postgres.NewDocumentStore(a.db)
	categories := documents.NewCategoryRepository(store)
	return services.NewEventService(documents.NewEventRepository(store), categories), categories
}
