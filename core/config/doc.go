// Package config provides configuration management for the propulsion estimator.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of each
// partial configuration.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port, API key and default analysis mode
//   - Database: catalog database (mysql or sqlite)
//   - Storage: S3/MinIO credentials and bucket for catalog snapshots and calculator exports
//   - Log: logging level and format
//   - Catalog: catalog source and snapshot layout
//   - Matching: battery tolerances and fuzzy threshold
//   - Solver: throttle search tolerance, iteration budget and usable capacity
//   - Calibration: calculator bridge endpoint and timeout
//
// Environment variables map to nested keys by replacing dots with underscores,
// so SOLVER_TOLERANCE sets solver.tolerance.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
