// Package logging assembles the structured slog loggers used across Scribe.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes attr helpers so pipeline code can tag log lines with
// components, item names, and run IDs in a uniform shape. A no-op logger is
// provided for tests and wiring code that cannot fail.
//
// Components receive their logger explicitly; nothing in the repository
// depends on a process-wide default logger.
package logging
