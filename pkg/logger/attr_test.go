package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/textutils/pkg/logger"
)

func TestError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Command("sanitize").Equal(slog.String("command", "sanitize")))
	assert.True(t, logger.Line(7).Equal(slog.Int("line", 7)))
	assert.True(t, logger.Count(2).Equal(slog.Int("count", 2)))
	assert.True(t, logger.Component("cli").Equal(slog.String("component", "cli")))
	assert.True(t, logger.Profile("slug").Equal(slog.String("profile", "slug")))
	assert.True(t, logger.Profile("").Equal(slog.Attr{}))
	assert.True(t, logger.Domain("example.com").Equal(slog.String("domain", "example.com")))
	assert.True(t, logger.Domain("").Equal(slog.Attr{}))
}
