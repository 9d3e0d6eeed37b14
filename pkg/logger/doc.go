// Package logger provides slog attribute helpers with consistent keys for
// structured logging across the module.
//
// Helpers return an empty slog.Attr for nil or empty input, so they can be
// used without guard clauses:
//
//	log.Info("session invalidated",
//		logger.Component("guard"),
//		logger.Reason("inactivity"),
//		logger.Error(err), // no-op when err is nil
//	)
package logger
