// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so the estimator can read component catalog
// snapshots and archive raw calculator exports on AWS S3 or a self-hosted MinIO.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Helpers
//
//   - ReadObject: downloads a whole object (catalog snapshots are small JSON files).
//   - WriteObject: uploads bytes, creating the bucket on first use.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	data, err := storage.ReadObject(ctx, client, "propulsion", "catalog/motors.json")
package storage
