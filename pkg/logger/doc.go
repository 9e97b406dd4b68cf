// Package logger builds *slog.Logger values through functional options and
// provides attribute constructors that keep key names consistent.
//
// New picks a text or JSON handler and attaches static attributes. When
// context extractors are registered, each record also gets the attributes
// they pull out of the logging context.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Development, "uikit"),
//	    logger.WithContextValue("page", pageKey{}),
//	)
//	log.LogAttrs(ctx, slog.LevelWarn, "notification dropped",
//	    logger.NotificationID(id),
//	    logger.Reason("evicted"),
//	)
//
// Components across the module accept a logger option and fall back to
// slog.Default().
package logger
