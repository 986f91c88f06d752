// Package logger builds log/slog loggers from functional options and adds a
// handful of attribute helpers with consistent keys for validation events.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler according to the
// configured Format, attaches static attributes, and wraps the result in
// LogHandlerDecorator so ContextExtractor callbacks can add request-scoped
// values on every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "formcheck"),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.Debug("field checked",
//	    logger.Field("email"),
//	    logger.Valid(false),
//	    logger.Violations(2),
//	)
//
// # Configuration
//
//   - WithEnvironment – defaults per environment (development, staging, production).
//   - WithFormat / WithTextFormatter / WithJSONFormatter – output format.
//   - WithLevel – minimum level.
//   - WithAttr – static attributes.
//   - WithContextExtractors / WithContextValue – attributes taken from context.
//
// Error returns an empty attribute for a nil error, so
//
//	log.Info("parsed", logger.Error(err))
//
// needs no nil check.
package logger
