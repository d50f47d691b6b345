package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Command records the subcommand name under the key "command".
func Command(name string) slog.Attr {
	return slog.String("command", name)
}

// Line records a 1-based input line number under the key "line".
func Line(n int) slog.Attr {
	return slog.Int("line", n)
}

// Profile records the sanitize profile name under the key "profile".
// An empty name returns an empty Attr.
func Profile(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("profile", name)
}

// Count records a processed item count under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Domain records an email domain under the key "domain".
// An empty domain returns an empty Attr.
func Domain(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("domain", name)
}
