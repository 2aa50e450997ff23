// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production).
//
// # Run Correlation
//
// Every pipeline invocation is tagged with a run id. The WithRunID helper
// attaches a fresh id to the logger, ensuring that all logs belonging to one
// run can be correlated even when several runs interleave in aggregated logs.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log = logger.WithRunID(log)
//	log.Info("Update started")
package logger
