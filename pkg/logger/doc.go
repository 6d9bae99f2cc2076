// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers with consistent keys.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "formcheck"),
//		logger.WithLevelName(cfg.LogLevel),
//		logger.WithContextValue("request_id", requestIDKey),
//	)
//	log.Debug("schema registered", logger.Schema("Item"), logger.Count("fields", 2))
//
// Context extractors add attributes pulled from the record's context, such as
// the request id or client address, each time a record is handled. Loggers
// derived with With or WithGroup keep them.
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
