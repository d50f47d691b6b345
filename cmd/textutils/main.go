// Command textutils exposes the sanitizer and random helpers over stdin/stdout.
//
//	textutils sanitize [--no-spaces] [--replacement s] [--remap] [-p name] [--profiles file]
//	textutils email
//	textutils slug [--sep s] [--max n] [--suffix n]
//	textutils html
//	textutils token [-n count]
//	textutils string [--size n] [--chars uppercase,lowercase,digits] [-n count]
//
// Settings are read from TEXTUTILS_* environment variables, see pkg/config.
// Logs go to stderr.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/textutils/pkg/config"
	"github.com/dmitrymomot/textutils/pkg/environment"
	"github.com/dmitrymomot/textutils/pkg/logger"
)

const serviceName = "textutils"

// commandKey carries the running subcommand name in the context for logging.
type commandKey struct{}

func main() {
	var cfg config.Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "textutils: %v\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textutils: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{
		cfg:    cfg,
		log:    log,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	if err := a.run(ctx, os.Args[1:]); err != nil {
		stop()
		os.Exit(exitCode(a, err))
	}
}

func newLogger(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, cfg.LogLevel)
	}

	format := logger.Format(cfg.LogFormat)
	if format != logger.FormatJSON && format != logger.FormatText {
		return nil, fmt.Errorf("invalid log format %q: must be %q or %q", cfg.LogFormat, logger.FormatJSON, logger.FormatText)
	}

	return logger.New(
		logger.WithEnvironment(environment.Parse(cfg.Env), serviceName),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(w),
		logger.WithContextValue("command", commandKey{}),
	), nil
}

func exitCode(a *app, err error) int {
	switch {
	case errors.Is(err, errUsage):
		return 2
	case errors.Is(err, errInvalidInput):
		return 1
	default:
		a.log.Error("command failed", logger.Error(err))
		return 1
	}
}
