// Package app assembles the commission store, service and query engine from
// configuration.
package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rpggio/commissions/internal/config"
	"github.com/rpggio/commissions/internal/domain/commission"
	"github.com/rpggio/commissions/internal/domain/query"
	"github.com/rpggio/commissions/internal/memstore"
	"github.com/rpggio/commissions/internal/sqlite"
)

// App holds the wired services. Close releases the store.
type App struct {
	Commissions  *commission.Service
	Reports      *query.Engine
	CurrentLimit int
	Logger       *slog.Logger

	db *sqlite.DB
}

// New opens the configured backend and builds the services over it.
func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var (
		repo commission.Repository
		db   *sqlite.DB
	)
	switch cfg.DB.Backend {
	case config.BackendMemory:
		repo = memstore.New()
	case config.BackendSQLite:
		if err := ensureDBDir(cfg.DB.Path); err != nil {
			return nil, fmt.Errorf("prepare database path: %w", err)
		}
		var err error
		db, err = sqlite.New(cfg.DB.Path)
		if err != nil {
			return nil, err
		}
		if err := db.RunMigrations(); err != nil {
			db.Close()
			return nil, err
		}
		repo = sqlite.NewCommissionRepository(db)
	default:
		return nil, fmt.Errorf("unknown db backend %q", cfg.DB.Backend)
	}

	limit := cfg.Current.Limit
	if limit <= 0 {
		limit = query.DefaultCurrentLimit
	}

	logger.Debug("store opened", "backend", cfg.DB.Backend, "path", cfg.DB.Path)
	return &App{
		Commissions:  commission.NewService(repo, commission.ServiceOptions{StrictVocabulary: cfg.Vocabulary.Strict}, logger),
		Reports:      query.NewEngine(repo, logger),
		CurrentLimit: limit,
		Logger:       logger,
		db:           db,
	}, nil
}

// Close releases the database handle, if any.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
