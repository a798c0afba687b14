package propulsion

// Config holds configuration for the propulsion solver.
type Config struct {
	// Tolerance is the thrust tolerance of the throttle search in newtons.
	Tolerance float64 `mapstructure:"tolerance" default:"0.01"`
	// MaxIterations bounds the throttle bisection.
	MaxIterations int `mapstructure:"max_iterations" default:"200"`
	// UsableCapacity is the fraction of battery capacity used for endurance.
	UsableCapacity float64 `mapstructure:"usable_capacity" default:"0.85"`
	// RequireConverged turns a non-converged throttle search into an error.
	RequireConverged bool `mapstructure:"require_converged" default:"false"`
	// MemoCapacity bounds the number of memoized analysis reports.
	MemoCapacity int `mapstructure:"memo_capacity" default:"1024"`
}

// DefaultConfig returns the solver settings used when none are configured.
func DefaultConfig() Config {
	return Config{
		Tolerance:      0.01,
		MaxIterations:  200,
		UsableCapacity: 0.85,
		MemoCapacity:   1024,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Tolerance <= 0 {
		c.Tolerance = d.Tolerance
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = d.MaxIterations
	}
	if c.UsableCapacity <= 0 || c.UsableCapacity > 1 {
		c.UsableCapacity = d.UsableCapacity
	}
	if c.MemoCapacity <= 0 {
		c.MemoCapacity = d.MemoCapacity
	}
	return c
}
