package catalog

import (
	"context"
	"fmt"
	"strings"

	"propulsion-estimator/core/database"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// VerifySchema checks that every catalog table carries the columns the
// resolvers read.
func VerifySchema(db *gorm.DB) error {
	for _, table := range tableOrder {
		missing, err := database.MissingColumns(db, table, requiredColumns[table])
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return fmt.Errorf("table %s is missing columns: %s", table, strings.Join(missing, ", "))
		}
	}
	return nil
}

// LoadDatabase reads all catalog tables concurrently.
func LoadDatabase(ctx context.Context, db *gorm.DB) (*Catalog, error) {
	if err := VerifySchema(db); err != nil {
		return nil, err
	}

	c := &Catalog{Source: SourceDatabase}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return findAll(gctx, db, &c.Batteries)
	})
	g.Go(func() error {
		return findAll(gctx, db, &c.Motors)
	})
	g.Go(func() error {
		return findAll(gctx, db, &c.ESCs)
	})
	g.Go(func() error {
		return findAll(gctx, db, &c.Propellers)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return c, nil
}

// FromDatabase returns a Loader reading from db.
func FromDatabase(db *gorm.DB) Loader {
	return func(ctx context.Context) (*Catalog, error) {
		return LoadDatabase(ctx, db)
	}
}

func findAll[T any](ctx context.Context, db *gorm.DB, dest *[]T) error {
	if err := db.WithContext(ctx).Order("id").Find(dest).Error; err != nil {
		return fmt.Errorf("failed to load catalog records: %w", err)
	}
	return nil
}

// Import replaces the catalog tables with the contents of c.
func Import(ctx context.Context, db *gorm.DB, c *Catalog, batchSize int) error {
	if batchSize <= 0 {
		batchSize = 500
	}
	if err := db.WithContext(ctx).AutoMigrate(&Battery{}, &Motor{}, &ESC{}, &Propeller{}); err != nil {
		return fmt.Errorf("failed to migrate catalog tables: %w", err)
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := replaceAll(tx, c.Batteries, batchSize); err != nil {
			return err
		}
		if err := replaceAll(tx, c.Motors, batchSize); err != nil {
			return err
		}
		if err := replaceAll(tx, c.ESCs, batchSize); err != nil {
			return err
		}
		return replaceAll(tx, c.Propellers, batchSize)
	})
}

func replaceAll[T any](tx *gorm.DB, records []T, batchSize int) error {
	var zero T
	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&zero).Error; err != nil {
		return fmt.Errorf("failed to clear catalog table: %w", err)
	}
	if len(records) == 0 {
		return nil
	}
	if err := tx.CreateInBatches(records, batchSize).Error; err != nil {
		return fmt.Errorf("failed to insert catalog records: %w", err)
	}
	return nil
}
