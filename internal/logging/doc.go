// Package logging builds the launcher's slog loggers with console and JSON
// handlers. The migration guard deliberately does not use this package; it
// runs before the data directory (and therefore the log file location) is
// settled.
package logging
