package integrity

import (
	"context"
	"errors"
	"fmt"

	"propulsion-estimator/core/catalog"
	"propulsion-estimator/core/storage"
	"propulsion-estimator/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoDatabase means a check needs the catalog database but none is connected.
var ErrNoDatabase = errors.New("catalog database is not connected")

// Service handles catalog integrity checks.
type Service struct {
	client storage.Client
	bucket string
	prefix string
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new integrity service. db may be nil when the catalog
// is served from storage only.
func NewService(client storage.Client, bucket, prefix string, db *gorm.DB, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		bucket: bucket,
		prefix: prefix,
		db:     db,
		logger: logger,
	}
}

// CheckSchema verifies the catalog tables.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	return checks.CheckSchema(s.db)
}

// CheckSnapshots returns the domains without a snapshot object.
func (s *Service) CheckSnapshots(ctx context.Context) ([]string, error) {
	return checks.CheckSnapshots(ctx, s.client, s.bucket, s.prefix)
}

// FixSnapshots rewrites every snapshot from the catalog database.
func (s *Service) FixSnapshots(ctx context.Context) error {
	if s.db == nil {
		return ErrNoDatabase
	}
	c, err := catalog.LoadDatabase(ctx, s.db)
	if err != nil {
		return err
	}
	if err := catalog.WriteSnapshot(ctx, s.client, s.bucket, s.prefix, c); err != nil {
		return err
	}
	s.logger.Info("Snapshots rewritten from database", zap.String("prefix", s.prefix))
	return nil
}

// CheckDrift compares the database catalog with the storage snapshot.
func (s *Service) CheckDrift(ctx context.Context) (*checks.DriftReport, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	fromDB, err := catalog.LoadDatabase(ctx, s.db)
	if err != nil {
		return nil, err
	}
	fromStorage, err := catalog.LoadSnapshot(ctx, s.client, s.bucket, s.prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return checks.CompareCatalogs(fromDB, fromStorage), nil
}
