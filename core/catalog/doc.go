// Package catalog holds the reference component database: batteries,
// motors, speed controllers and propellers. A Catalog is loaded either from
// SQL tables through gorm or from JSON snapshots in object storage, and is
// served through a Store that swaps whole snapshots on reload.
package catalog
