package calibration

// Config holds configuration for the external calculator bridge.
type Config struct {
	// Endpoint is the URL of the calculator bridge. Empty disables calibrated mode.
	Endpoint string `mapstructure:"endpoint" default:""`
	// TimeoutSeconds bounds a whole calculator round-trip.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"120"`
	// ArchivePrefix is the storage prefix for raw calculator exports.
	ArchivePrefix string `mapstructure:"archive_prefix" default:"calibration"`
}
