// Package server initializes and runs the account service: it opens the
// database, applies migrations, wires the services and starts the HTTP
// server, shutting everything down on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/orgkeeper/internal/logging"
	"github.com/dmitrijs2005/orgkeeper/internal/server/config"
	"github.com/dmitrijs2005/orgkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/orgkeeper/internal/server/services"

	hs "github.com/dmitrijs2005/orgkeeper/internal/server/http"
)

type App struct {
	config              *config.Config
	logger              logging.Logger
	db                  *sql.DB
	repoManager         repomanager.RepositoryManager
	userService         *services.UserService
	organisationService *services.OrganisationService
}

func NewApp(cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()

	us := services.NewUserService(db, rm, cfg)
	orgs := services.NewOrganisationService(db, rm)

	return &App{
		config:              cfg,
		logger:              logger,
		db:                  db,
		repoManager:         rm,
		userService:         us,
		organisationService: orgs,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := hs.NewServer(app.config.EndpointAddrHTTP, app.logger, app.userService, app.organisationService, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	if err := app.repoManager.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Warn(ctx, "error closing db", "error", err.Error())
	}

	return nil
}
