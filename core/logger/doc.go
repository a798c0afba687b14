// Package logger provides a structured logging facility based on Zap.
//
// Level selects the development (debug) or production preset, and Format picks
// console or json encoding. Matching misses, solver failures and calculator
// round-trips are all logged through loggers built here.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Catalog loaded", zap.Int("motors", n))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Analysis failed", zap.Error(err))
package logger
