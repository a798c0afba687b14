// Package integrity provides health checks for the component catalog.
//
// The catalog can live in a database and as JSON snapshots in object storage.
// This package validates both and reports where they disagree.
//
// # Checks Provided
//
//   - Schema: Checks that every catalog table defines the columns the resolvers read.
//   - Snapshots: Verifies that each domain has a snapshot object under the configured prefix.
//   - Drift: Compares the database with the snapshot and lists records missing from either side or changed.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/snapshots : Runs the snapshot check (supports ?fix=true to rewrite from the database).
//   - GET /integrity/drift : Runs the drift check.
package integrity
