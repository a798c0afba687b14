// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures and valid values for server settings,
// such as the supported analysis modes.
//
// # Configuration
//
// The Config struct defines the HTTP port, API key, and the analysis mode
// (analytic equations or calibrated calculator records).
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the propulsion feature to pick its output source.
package server
