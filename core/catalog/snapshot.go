package catalog

import (
	"context"
	"fmt"
	"path"

	"propulsion-estimator/core/storage"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

// SnapshotObject returns the object name of a domain snapshot.
func SnapshotObject(prefix, domain string) string {
	return path.Join(prefix, domain+".json")
}

// LoadSnapshot reads the JSON snapshots of all domains from storage.
func LoadSnapshot(ctx context.Context, client storage.Client, bucket, prefix string) (*Catalog, error) {
	c := &Catalog{Source: SourceStorage}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return readSnapshot(gctx, client, bucket, SnapshotObject(prefix, DomainBattery), &c.Batteries)
	})
	g.Go(func() error {
		return readSnapshot(gctx, client, bucket, SnapshotObject(prefix, DomainMotor), &c.Motors)
	})
	g.Go(func() error {
		return readSnapshot(gctx, client, bucket, SnapshotObject(prefix, DomainESC), &c.ESCs)
	})
	g.Go(func() error {
		return readSnapshot(gctx, client, bucket, SnapshotObject(prefix, DomainPropeller), &c.Propellers)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return c, nil
}

// FromStorage returns a Loader reading snapshots from storage.
func FromStorage(client storage.Client, bucket, prefix string) Loader {
	return func(ctx context.Context) (*Catalog, error) {
		return LoadSnapshot(ctx, client, bucket, prefix)
	}
}

func readSnapshot[T any](ctx context.Context, client storage.Client, bucket, objectName string, dest *[]T) error {
	data, err := storage.ReadObject(ctx, client, bucket, objectName)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode snapshot %s: %w", objectName, err)
	}
	return nil
}

// WriteSnapshot exports c to storage, one object per domain.
func WriteSnapshot(ctx context.Context, client storage.Client, bucket, prefix string, c *Catalog) error {
	parts := map[string]any{
		DomainBattery:   c.Batteries,
		DomainMotor:     c.Motors,
		DomainESC:       c.ESCs,
		DomainPropeller: c.Propellers,
	}
	for _, domain := range []string{DomainBattery, DomainMotor, DomainESC, DomainPropeller} {
		data, err := json.Marshal(parts[domain])
		if err != nil {
			return fmt.Errorf("failed to encode %s snapshot: %w", domain, err)
		}
		if err := storage.WriteObject(ctx, client, bucket, SnapshotObject(prefix, domain), "application/json", data); err != nil {
			return err
		}
	}
	return nil
}
