// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// New creates a *slog.Logger configured by Option functions. These options
// allow you to:
//
//   • Select an output format (text or json)
//   • Set the minimum log level, either typed or parsed from a string
//   • Supply default slog.Attr values applied to every record
//   • Register ContextExtractor callbacks that inject attributes pulled from a
//     context value every time Handle is invoked.
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the configured
// Format and wraps it with LogHandlerDecorator, which runs registered
// ContextExtractor callbacks before delegating to the underlying handler.
//
// Helper constructors such as Error, ClientID and Fields live in
// attr.go and keep attribute naming consistent across the codebase.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "gym"),
//	    logger.WithLevelString(os.Getenv("GYM_LOG_LEVEL")),
//	)
//	log.DebugContext(ctx, "ignored unknown fields", logger.Fields("nickname"))
//
// # Error Handling
//
// Error and Errors produce attributes only when the supplied error value is
// non-nil, so calls like
//
//	log.Info("decoded client", logger.Error(err))
//
// need no additional nil check.
package logger
