package app

import (
	"fmt"
	"io/fs"

	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/store"
	"github.com/hance08/tally/internal/ui"
	"github.com/pterm/pterm"
)

type App struct {
	Service *service.Service
	Store   store.KVStore
	Logger  *pterm.Logger
	DBPath  string
}

type Options struct {
	// Ephemeral keeps the ledger in memory only.
	Ephemeral bool
}

// NewApp initialize storage and the ledger, then return App entity
func NewApp(cfg *config.Config, migrationFS fs.FS, opts Options) (*App, func(), error) {
	logger := ui.NewLogger(cfg.Log.Level)

	var (
		kv     store.KVStore
		dbPath string
	)
	if opts.Ephemeral {
		kv = store.NewMemoryStore()
		logger.Debug("using in-memory store")
	} else {
		var err error
		dbPath, err = ResolveDBPath(cfg.Storage.Path)
		if err != nil {
			return nil, nil, err
		}

		sqliteStore, err := store.NewSQLiteStore(dbPath, migrationFS)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		kv = sqliteStore
		logger.Debug("database ready", logger.Args("path", dbPath))
	}

	cleanup := func() {
		if err := kv.Close(); err != nil {
			fmt.Printf("Error closing DB: %v\n", err)
		}
	}

	ledgerStore := store.NewLedgerStore(kv, cfg.Storage.Key, logger)
	l, err := ledger.Open(ledgerStore, ledger.WithLogger(logger))
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	l.Subscribe(func(e ledger.Event) {
		logger.Debug("ledger changed",
			logger.Args("event", string(e.Kind), "id", e.ID, "transactions", e.Count))
	})

	return &App{
		Service: service.NewService(l, cfg),
		Store:   kv,
		Logger:  logger,
		DBPath:  dbPath,
	}, cleanup, nil
}
