package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"minesweep/internal/config"
	"minesweep/internal/database"
	"minesweep/internal/game"
	"minesweep/internal/middleware"
	"minesweep/internal/repository"
)

type App struct {
	log        *logrus.Logger
	router     *http.ServeMux
	migrations fs.FS

	db       *pgxpool.Pool
	repo     *repository.Queries
	registry *game.Registry
	cookies  *config.Cookies
	ws       *config.WebSocket
}

func New(log *logrus.Logger, migrations fs.FS) *App {
	return &App{
		log:        log,
		router:     http.NewServeMux(),
		migrations: migrations,
	}
}

func (a *App) Start(ctx context.Context) error {
	db, err := database.ConnectAndMigrate(ctx, a.migrations)
	if err != nil {
		return fmt.Errorf("unable to connect to db: %w", err)
	}
	defer db.Close()
	a.db = db
	a.repo = repository.New(db)

	jwt, err := config.NewJWT()
	if err != nil {
		return fmt.Errorf("unable to load jwt keys: %w", err)
	}
	a.cookies, err = config.NewCookies(jwt)
	if err != nil {
		return err
	}

	a.ws = config.NewWebSocket()
	a.registry = game.NewRegistry()

	a.loadRoutes()

	server := &http.Server{
		Addr: config.Addr(),
		Handler: middleware.Wrap(
			a.router,
			middleware.Cors(),
			middleware.Auth(a.cookies),
			middleware.Logging(a.log),
		),
	}

	a.log.Info("ready to serve @ ", server.Addr)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
