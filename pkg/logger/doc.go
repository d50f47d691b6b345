// Package logger builds the *slog.Logger used by the textutils command.
//
// New takes functional options:
//
//   - WithEnvironment – per-environment defaults (text/debug in development,
//     json/info in staging and production) plus service and env attributes.
//   - WithFormat / WithLevel – override format and level.
//   - WithOutput – destination, stderr by default so stdout carries results.
//   - WithAttr – static attributes.
//   - WithContextExtractors / WithContextValue – attributes read from the
//     context passed to the *Context logging methods.
//
// Attribute helpers (Error, Command, Line, Profile, Count, Component) keep key
// names consistent.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Parse(cfg.Env), "textutils"),
//	    logger.WithLevel(level),
//	    logger.WithContextValue("command", commandKey{}),
//	)
//
//	ctx := context.WithValue(ctx, commandKey{}, "email")
//	log.WarnContext(ctx, "invalid email", logger.Line(3), logger.Error(err))
//
// Error returns an empty attribute for a nil error, so it can be passed
// without a nil check.
package logger
