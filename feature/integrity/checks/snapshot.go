package checks

import (
	"context"
	"fmt"

	"propulsion-estimator/core/catalog"
	"propulsion-estimator/core/storage"

	"github.com/minio/minio-go/v7"
)

// SnapshotDomains lists the domains that must have a snapshot object.
var SnapshotDomains = []string{
	catalog.DomainBattery,
	catalog.DomainMotor,
	catalog.DomainESC,
	catalog.DomainPropeller,
}

// CheckSnapshots returns the domains whose snapshot object is missing.
func CheckSnapshots(ctx context.Context, client storage.Client, bucket, prefix string) ([]string, error) {
	var missing []string

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return append(missing, SnapshotDomains...), nil
	}

	for _, domain := range SnapshotDomains {
		objectName := catalog.SnapshotObject(prefix, domain)
		opts := minio.ListObjectsOptions{
			Prefix:    objectName,
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for obj := range client.ListObjects(ctx, bucket, opts) {
			if obj.Err == nil && obj.Key == objectName {
				found = true
			}
			break
		}

		if !found {
			missing = append(missing, domain)
		}
	}

	return missing, nil
}
