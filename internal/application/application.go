package application

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/easyperl/fairbanks/internal/api"
	"github.com/easyperl/fairbanks/internal/config"
	"github.com/easyperl/fairbanks/internal/menu"
	"github.com/easyperl/fairbanks/internal/solver"
	"github.com/easyperl/fairbanks/internal/storage"
)

// App encapsulates the application dependencies and HTTP server.
type App struct {
	storage storage.Storage
	solver  solver.Solver
	handler *api.Handler
	router  http.Handler
	logger  *zap.Logger
	server  *http.Server
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	store := storage.NewMemoryStorage()

	if cfg.MenuFile != "" {
		items, err := loadMenuFile(cfg.MenuFile, logger)
		if err != nil {
			return nil, fmt.Errorf("load menu file: %w", err)
		}
		if err := store.SetMenu(items); err != nil {
			return nil, fmt.Errorf("apply initial menu: %w", err)
		}
	}

	sv := solver.New()
	handler := api.NewHandler(sv, store)
	router := api.NewRouter(handler, logger,
		api.WithLogging(cfg.EnableRequestLogging),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	server := NewServer(cfg, router)

	return &App{
		storage: store,
		solver:  sv,
		handler: handler,
		router:  router,
		logger:  logger,
		server:  server,
	}, nil
}

// NewServer creates and configures an HTTP server from the provided configuration.
func NewServer(cfg config.Config, handler http.Handler) *http.Server {
	addr := cfg.Port
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Start starts the HTTP server in a goroutine and logs the listening address.
func (a *App) Start() error {
	go func() {
		a.logger.Info("server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}

// Storage returns the menu storage, primarily for tests.
func (a *App) Storage() storage.Storage {
	return a.storage
}

// loadMenuFile reads an item-only menu file. Malformed lines are logged and
// skipped; the file is rejected only when no valid item remains.
func loadMenuFile(path string, logger *zap.Logger) ([]menu.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	parser := menu.NewParser(menu.WithLogger(logger))
	items, parseErrs, err := parser.ParseMenu(f)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%s: no valid menu items (%d malformed lines)", path, len(parseErrs))
	}

	return items, nil
}
