// Package logging provides structured logging for readerstyle.
//
// This package wraps a global zap logger with convenience functions. The
// reader runs full-screen, so logging is silent unless a level is requested
// and, for the TUI, usually directed to a file.
//
// # Log Levels
//
//   - Debug: panel transitions, listener attach/detach, draft edits
//   - Info: applied configurations, preview clients connecting
//   - Warn: dropped preview clients, unreadable optional files
//   - Error: startup failures
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.InitializeFile("/tmp/readerstyle.log", "debug"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// With an empty level the READERSTYLE_LOG_LEVEL environment variable is
// consulted; when that is empty too, a no-op logger is installed.
//
// # Domain Helpers
//
//	logging.LogApply(cfg.Values())
//	logging.LogConnection(remoteAddr, "preview_client_connected")
package logging
