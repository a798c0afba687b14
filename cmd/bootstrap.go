package cmd

import (
	"context"
	"fmt"

	"propulsion-estimator/core/catalog"
	"propulsion-estimator/core/config"
	"propulsion-estimator/core/database"
	"propulsion-estimator/core/logger"
	"propulsion-estimator/core/storage"
	"propulsion-estimator/feature/calibration"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// bootstrap loads the configuration and builds the application logger.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logg, nil
}

// connectDatabase opens the catalog database. It is optional when the
// catalog is served from storage; a failed connection is then only logged.
func connectDatabase(cfg *config.Config, logg *zap.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg.Database)
	if err == nil {
		return db, nil
	}
	if cfg.Catalog.Source == catalog.SourceDatabase {
		return nil, fmt.Errorf("failed to connect to catalog database: %w", err)
	}
	logg.Warn("Optional database connection failed", zap.Error(err))
	return nil, nil
}

// openCatalog builds the catalog store for the configured source and loads
// the first snapshot.
func openCatalog(ctx context.Context, cfg *config.Config, client storage.Client, db *gorm.DB, logg *zap.Logger) (*catalog.Store, error) {
	var load catalog.Loader
	switch cfg.Catalog.Source {
	case catalog.SourceStorage:
		load = catalog.FromStorage(client, cfg.Storage.Bucket, cfg.Catalog.SnapshotPrefix)
	case catalog.SourceDatabase:
		if db == nil {
			return nil, fmt.Errorf("catalog source %s needs a database connection", cfg.Catalog.Source)
		}
		if err := catalog.VerifySchema(db); err != nil {
			return nil, err
		}
		load = catalog.FromDatabase(db)
	default:
		return nil, fmt.Errorf("unknown catalog source: %s", cfg.Catalog.Source)
	}

	store := catalog.NewStore(load, logg)
	if _, err := store.Reload(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

// loadCatalog connects whatever the configured source needs and loads the catalog.
func loadCatalog(ctx context.Context, cfg *config.Config, logg *zap.Logger) (storage.Client, *catalog.Store, error) {
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	db, err := connectDatabase(cfg, logg)
	if err != nil {
		return nil, nil, err
	}
	store, err := openCatalog(ctx, cfg, client, db, logg)
	if err != nil {
		return nil, nil, err
	}
	return client, store, nil
}

// newAdapter returns the calculator adapter, or nil when no endpoint is configured.
func newAdapter(cfg *config.Config, client storage.Client, logg *zap.Logger) calibration.Adapter {
	if cfg.Calibration.Endpoint == "" {
		return nil
	}
	return calibration.NewHTTPAdapter(cfg.Calibration, client, cfg.Storage.Bucket, logg)
}
