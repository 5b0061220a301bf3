// Package notifications delivers drain events via pluggable notifiers.
//
// The default implementation publishes to ntfy using the topic configured in
// config.toml and gracefully degrades to a no-op when notifications are
// disabled. The run_summary and errors toggles let operators subscribe to
// only the events they care about without touching the calling code.
//
// Extend this package if you need alternative transports; the command layer
// depends only on the simple Service interface.
package notifications
