package catalog

const (
	SourceDatabase = "database"
	SourceStorage  = "storage"
)

// Config holds configuration for the component catalog.
type Config struct {
	// Source selects where the catalog is loaded from (database, storage).
	Source string `mapstructure:"source" default:"database"`
	// SnapshotPrefix is the object prefix of the JSON snapshots in storage.
	SnapshotPrefix string `mapstructure:"snapshot_prefix" default:"catalog"`
	// ImportBatchSize is the insert batch size used when importing snapshots.
	ImportBatchSize int `mapstructure:"import_batch_size" default:"500"`
}
