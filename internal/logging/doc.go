// Package logging holds the process-wide slog logger, writing JSON
// lines to a file under the docsift home directory.
package logging
