// Package logging builds the process-wide zap logger.
//
// Two modes are supported:
//   - Development: colored console output on stderr
//   - Production: JSON output on stderr
//
// Example Usage:
//
//	logger, err := logging.New("info", true)
//	logger.Info("Window opened", zap.Int("width", 800))
package logging
