// Package logging assembles the structured slog loggers used by foc.
//
// It owns the console and JSON handlers, maps configured level names onto
// slog levels, and provides attribute helpers plus context plumbing so every
// line emitted during a run carries the same run_id. A no-op logger is
// available for tests and wiring code that cannot fail.
//
// Logs are diagnostics and go to stderr by default; the per-file report a user
// reads is written by the CLI to stdout.
package logging
