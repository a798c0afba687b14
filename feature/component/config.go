package component

// Config holds the matching thresholds used by the resolvers.
type Config struct {
	// BatteryTolerance is the C-rating band used when resolving a battery for a propulsion setup.
	BatteryTolerance float64 `mapstructure:"battery_tolerance" default:"10"`
	// BatteryLookupTolerance is the C-rating band used by the standalone battery lookup.
	BatteryLookupTolerance float64 `mapstructure:"battery_lookup_tolerance" default:"5"`
	// CellVoltage is the nominal cell voltage resolved batteries are restricted to.
	CellVoltage float64 `mapstructure:"cell_voltage" default:"3.7"`
	// FuzzyThreshold is the minimum token-set score for identifier matches.
	FuzzyThreshold int `mapstructure:"fuzzy_threshold" default:"70"`
}

// DefaultConfig returns the thresholds used when no configuration is loaded.
func DefaultConfig() Config {
	return Config{
		BatteryTolerance:       10,
		BatteryLookupTolerance: 5,
		CellVoltage:            3.7,
		FuzzyThreshold:         70,
	}
}
