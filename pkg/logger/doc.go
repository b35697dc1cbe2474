// Package logger builds *slog.Logger values for the datecheck packages and
// binary.
//
// New takes functional options for level, format (json or text), output,
// static attributes and ContextExtractors. Extractors copy request-scoped
// values, such as the id set by requestid.Middleware, into every record
// logged through the *Context methods.
//
// # Usage
//
//	format, err := logger.ParseFormat(os.Getenv("LOG_FORMAT"))
//	if err != nil {
//	    return err
//	}
//	log := logger.New(
//	    logger.WithFormat(format),
//	    logger.WithService("datecheck"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
//	log.DebugContext(ctx, "field failed validation",
//	    logger.Field("date_of_birth"),
//	    logger.Mode(temporal.ModeDate),
//	)
//
// Libraries accept a logger through an option and fall back to Nop.
//
// # Error Handling
//
// Error and Errors return an empty attribute for nil errors, which slog
// drops, so callers need no nil check. ParseFormat wraps ErrInvalidFormat.
package logger
