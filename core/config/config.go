package config

import (
	"reflect"
	"strings"

	"propulsion-estimator/core/catalog"
	"propulsion-estimator/core/database"
	"propulsion-estimator/core/logger"
	"propulsion-estimator/core/server"
	"propulsion-estimator/core/storage"
	"propulsion-estimator/feature/calibration"
	"propulsion-estimator/feature/component"
	"propulsion-estimator/feature/propulsion"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the catalog database.
	Database database.Config `mapstructure:"database"`
	// Catalog selects where component records are loaded from.
	Catalog catalog.Config `mapstructure:"catalog"`
	// Matching holds the inventory matching tolerances.
	Matching component.Config `mapstructure:"matching"`
	// Solver holds the throttle search and endurance settings.
	Solver propulsion.Config `mapstructure:"solver"`
	// Calibration configures the external calculator bridge.
	Calibration calibration.Config `mapstructure:"calibration"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Missing .env is fine outside development.
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// SOLVER_MAX_ITERATIONS -> solver.max_iterations
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Registering every key, even with an empty default, lets AutomaticEnv see it.
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
