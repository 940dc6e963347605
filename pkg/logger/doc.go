// Package logger builds *slog.Logger instances from functional options and
// provides attribute constructors that keep key names consistent.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(logger.Development, "eventdemo"),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.Debug("subscriber added", logger.Event("on_save"), logger.Subscribers(3))
//
// Without options New logs JSON at info level to stdout.
//
// # Options
//
//   - WithEnvironment – per-environment level and format plus service/env attributes.
//   - WithTextFormatter / WithJSONFormatter – override output format.
//   - WithLevel – set a custom slog.Level. ParseLevel converts configuration strings.
//   - WithOutput – redirect output.
//   - WithAttr – attach static attributes.
//
// Options apply in order, so WithLevel after WithEnvironment overrides the
// environment's default level.
//
// Error returns an empty attribute for a nil error, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
