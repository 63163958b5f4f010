package cmd

import (
	"fmt"

	"garment-geek/core/config"
	"garment-geek/core/database"
	"garment-geek/core/logger"
	"garment-geek/core/metrics"
	"garment-geek/core/storage"
	"garment-geek/feature/garment"
	"garment-geek/feature/order"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime bundles the dependencies shared by every command.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	store  storage.Client
}

// newRuntime loads configuration and connects to storage and, when
// configured, the database. A failed database connection is fatal only when
// the catalog is read from it.
func newRuntime() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, err
	}

	rt := &runtime{cfg: cfg, logger: logg, store: store}

	if cfg.Database.Driver != "" {
		conn, err := database.Connect(cfg.Database)
		switch {
		case err != nil && cfg.Catalog.Source == garment.SourceDatabase:
			return nil, err
		case err != nil:
			logg.Warn("Optional database connection failed", zap.Error(err))
		default:
			rt.db = conn
			logg.Debug("Connected to database", zap.String("driver", cfg.Database.Driver))
		}
	}
	return rt, nil
}

// migrate prepares the garments and orders tables when a database is connected.
func (rt *runtime) migrate() error {
	if rt.db == nil {
		return nil
	}
	if err := garment.Migrate(rt.db); err != nil {
		return err
	}
	return order.NewRepository(rt.db).Migrate()
}

// orders returns the order repository, or nil without a database.
func (rt *runtime) orders() *order.Repository {
	if rt.db == nil {
		return nil
	}
	return order.NewRepository(rt.db)
}

// catalog builds the catalog service for the configured source.
func (rt *runtime) catalog(m *metrics.Metrics) (*garment.Service, error) {
	src, err := garment.NewSource(rt.cfg.Catalog, rt.store, rt.cfg.Storage.Bucket, rt.db)
	if err != nil {
		return nil, err
	}
	return garment.NewService(src, rt.cfg.Catalog.CacheTTL(), rt.logger, m), nil
}

func (rt *runtime) close() {
	_ = rt.logger.Sync()
	if rt.db == nil {
		return
	}
	if sqlDB, err := rt.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
