package x_log

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInitWithConfig tests if InitWithConfig correctly sets the global level.
func TestInitWithConfig(t *testing.T) {
	for _, tc := range []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"ERROR", zerolog.ErrorLevel},
		{"warn", zerolog.WarnLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	} {
		InitWithConfig(&Config{Level: tc.level}, "testModule")
		assert.Equal(t, tc.want, zerolog.GlobalLevel(), "level %q", tc.level)
	}
}

// TestNew tests if the New function creates a scoped logger.
func TestNew(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	var buf bytes.Buffer
	logger := New("testModule").Output(&buf)
	logger.Info().Msg("Testing logger")

	assert.Contains(t, buf.String(), `"module":"testModule"`)
	assert.Contains(t, buf.String(), "Testing logger")
}

// TestFileLogging tests if the file logging works correctly.
func TestFileLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	InitWithConfig(&Config{
		ToFile:  true,
		LogFile: path,
		Level:   "info",
	}, "testModule")
	t.Cleanup(func() { _ = Close() })

	Info().Str("key", "bat").Msg("Test file logging")
	Debug().Msg("filtered out")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Test file logging")
	assert.Contains(t, string(content), `"service":"testModule"`)
	assert.NotContains(t, string(content), "filtered out")
}

// TestScopedLoggerSingleModuleKey checks that a scoped logger on top of
// the global one writes each tag once.
func TestScopedLoggerSingleModuleKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scoped.log")
	InitWithConfig(&Config{ToFile: true, LogFile: path}, "strie")
	t.Cleanup(func() { _ = Close() })

	l := New("bench")
	l.Info().Msg("scoped")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(content))
	assert.Equal(t, 1, strings.Count(line, `"module"`))
	assert.Equal(t, 1, strings.Count(line, `"service"`))

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "bench", entry["module"])
	assert.Equal(t, "strie", entry["service"])
}

// TestContextLogger tests logging with context integration.
func TestContextLogger(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	var buf bytes.Buffer
	logger := zerolog.New(&buf).With().Str("module", "testModule").Logger()
	ctx := WithLogger(context.Background(), &logger)

	From(ctx).Info().Msg("Message from context logger")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "testModule", entry["module"])
}

// TestFromWithoutLogger falls back to the global logger.
func TestFromWithoutLogger(t *testing.T) {
	assert.Same(t, &log.Logger, From(context.Background()))
}

// TestConsoleWriter checks plain console rendering of fields and levels.
func TestConsoleWriter(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	var buf bytes.Buffer
	cw := ConsoleWriterWithStyles(&Styles{Out: &buf})
	cw.NoColor = true
	logger := zerolog.New(cw).With().Timestamp().Logger()

	logger.Debug().Msg("Debug message")
	logger.Warn().Str("user", "john").Str("action", "login").Msg("User login")
	logger.Error().Err(errors.New("Sample error")).Msg("Test error logging")

	out := buf.String()
	assert.Contains(t, out, "Debug message")
	assert.Contains(t, out, "DEB")
	assert.Contains(t, out, "WAR")
	assert.Contains(t, out, "user=john")
	assert.Contains(t, out, "action=login")
	assert.Contains(t, out, "Sample error")
}

// TestStylesByName verifies that every theme styles the known levels.
func TestStylesByName(t *testing.T) {
	for _, name := range []string{"dark", "light", "unknown"} {
		styles := DefaultStylesByName(name)
		for _, lvl := range []Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel} {
			_, ok := styles.Levels[lvl]
			assert.True(t, ok, "theme %s level %s", name, lvl)
		}
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel(" Debug "))
	assert.Equal(t, ErrorLevel, ParseLevel("error"))
	assert.Equal(t, InfoLevel, ParseLevel("nope"))
	assert.Equal(t, InfoLevel, ParseLevel(""))
}
