package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// Mode selects how propulsion outputs are produced (analytic, calibrated).
	Mode string `mapstructure:"mode" default:"analytic"`
}

const (
	ModeAnalytic   = "analytic"
	ModeCalibrated = "calibrated"
)

// IsValidMode checks if the configured analysis mode is valid.
func (c Config) IsValidMode() bool {
	switch c.Mode {
	case ModeAnalytic, ModeCalibrated:
		return true
	default:
		return false
	}
}
