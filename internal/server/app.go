// Package server initializes and runs the task backend. It picks the
// storage backend, runs database migrations and serves the REST API with
// graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/johnp-05/sumativatr1/internal/logging"
	"github.com/johnp-05/sumativatr1/internal/server/config"
	"github.com/johnp-05/sumativatr1/internal/server/httpapi"
	"github.com/johnp-05/sumativatr1/internal/server/migrations"
	"github.com/johnp-05/sumativatr1/internal/server/tasks"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	repo   tasks.Repository
	db     *sql.DB
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewDefault()
	app := &App{config: c, logger: logger}

	if c.InMemory {
		app.repo = tasks.NewInMemoryRepository()
		return app, nil
	}

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := runMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	repo, err := tasks.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("task repo creation error: %w", err)
	}

	app.db = db
	app.repo = repo
	return app, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting task server", "addr", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	srv := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: httpapi.NewServer(app.repo, app.logger),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(shutdownCtx, "shutdown error", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, "server error", "error", err)
	}

	if app.db != nil {
		_ = app.db.Close()
	}

	app.logger.Info(ctx, "task server stopped")
}
