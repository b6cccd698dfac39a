// Package logger provides a structured logging facility based on Zap.
//
// # Context Awareness
//
// WithRayID extracts the ray id stored by the rayid middleware and attaches it
// to the log entry, so every line written while serving one download can be
// correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Artifact read failed", zap.Error(err))
package logger
