// Package logging configures the process-wide slog logger.
//
// Records are written as JSON (or text when requested) to stdout and, when a
// file path is configured, to a size-rotated file managed by lumberjack.
// Request-scoped loggers carrying the request ID come from the requestid
// package; this package only builds and installs the root logger.
//
//	logger, closer := logging.Setup(logging.Options{Level: "info"})
//	defer closer.Close()
//	logger.Info("server starting", slog.String("addr", addr))
package logging
