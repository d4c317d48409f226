// Package logging provides logging utilities for lan-address-gen.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings.
// Text output is rendered by charmbracelet/log, JSON output by slog itself:
//
//	logging.Debug("probing address", "addr", addr, "method", method)
//	logging.With("addr", addr).Debug("no reply", "error", err)
//	logging.Warn("unprivileged ICMP socket refused, switching to a raw socket")
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Using pattern: %s", pattern)
//	logging.UserSuccess("Available address found: %s", addr)
//
// Output destinations (redirectable with SetUserOutput):
//   - UserInfo, UserSuccess: stdout
//   - UserWarning: stderr
package logging
