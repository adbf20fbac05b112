// Package logger builds *slog.Logger values with functional options, helper
// attribute constructors and injection of values stored in context.Context.
//
// New picks slog.NewJSONHandler or slog.NewTextHandler based on the configured
// Format, attaches static attributes and, when ContextExtractor callbacks are
// registered, wraps the handler so every record also carries values pulled
// from the context passed to the *Context logging methods.
//
// Attribute helpers in attr.go keep key names consistent between the intake
// pipeline and the CLI: Component, Error, Filename, Size, StoredPath,
// ContentClass, ErrorKind and RequestID.
//
// # Usage
//
//	import "github.com/dmitrymomot/intake/pkg/logger"
//
//	log := logger.New(
//		logger.WithEnvironment("production", "intake"),
//		logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//
//	log.InfoContext(ctx, "upload stored",
//		logger.StoredPath(file.Path),
//		logger.Size(file.Size),
//	)
//
// WithFormat panics on unknown formats so that misconfiguration stops the
// process at startup.
package logger
