package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/mo-adel007/quizz/config"
	"github.com/mo-adel007/quizz/internal/dashboard"
	"github.com/mo-adel007/quizz/internal/db"
	"github.com/mo-adel007/quizz/internal/memstore"
	"github.com/mo-adel007/quizz/internal/rest"
)

// connectTimeout bounds the single startup connection attempt.
const connectTimeout = 5 * time.Second

type App struct {
	Store  dashboard.Store
	Logger *slog.Logger
	Echo   *echo.Echo
	Config config.Config
}

func New(cfg config.Config, logger *slog.Logger) *App {
	store := selectStore(cfg, logger)
	manager := dashboard.NewManager(store)

	e := rest.RegisterRoutes(
		rest.NewAnnouncementHandler(manager, logger),
		rest.NewQuizHandler(manager, logger),
		logger,
	)

	return &App{
		Store:  store,
		Logger: logger,
		Echo:   e,
		Config: cfg,
	}
}

// selectStore makes exactly one connection attempt and the choice holds
// for the process lifetime. A backend going unreachable later surfaces as
// hard errors, never a silent re-route to the mock store.
func selectStore(cfg config.Config, logger *slog.Logger) dashboard.Store {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	conn := pg.Connect(&cfg.Database)
	conn.AddQueryHook(db.NewQueryHook(logger))
	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close()
		logger.Warn("database unreachable, serving from in-memory store", "error", err)
		return memstore.NewSeeded()
	}

	if err := db.RunMigrations(ctx, dsn(cfg.Database), cfg.App.MigrationsDir); err != nil {
		_ = conn.Close()
		logger.Warn("migrations failed, serving from in-memory store", "error", err)
		return memstore.NewSeeded()
	}

	repo := db.New(conn)
	if err := repo.SeedSampleData(ctx); err != nil {
		logger.Error("sample data seeding failed", "error", err)
	}

	logger.Info("database connected", "addr", cfg.Database.Addr, "database", cfg.Database.Database)
	return repo
}

func dsn(opt pg.Options) string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		opt.User, opt.Password, opt.Addr, opt.Database)
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	err := a.Echo.Start(addr)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		err = nil
	}
	if cErr := a.Store.Close(); cErr != nil && err == nil {
		err = cErr
	}
	return err
}
