// Package x_log wires zerolog with styled console output and rotated
// log files.
package x_log

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Level = zerolog.Level

const (
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
	FatalLevel = zerolog.FatalLevel
)

var (
	mu   sync.Mutex
	sink *lumberjack.Logger // open rotated file, if any
)

//
// ---------- Init ----------

// InitWithConfig sets up the global logger. service, when set, is
// attached to every record; New adds the per-package module tag.
func InitWithConfig(cfg *Config, service string) {
	mu.Lock()
	defer mu.Unlock()

	ApplyDefaults(cfg)
	zerolog.SetGlobalLevel(ParseLevel(cfg.Level))

	if sink != nil {
		_ = sink.Close()
		sink = nil
	}

	var writers []io.Writer
	if cfg.ToConsole {
		styles := DefaultStylesByName(cfg.Style)
		styles.Out = os.Stderr
		cw := ConsoleWriterWithStyles(styles)
		cw.NoColor = !IsTerminal(os.Stderr)
		writers = append(writers, cw)
	}
	if cfg.ToFile {
		sink = &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		if cfg.ColoredFile {
			styles := DefaultStylesByName(cfg.Style)
			styles.Out = sink
			writers = append(writers, ConsoleWriterWithStyles(styles))
		} else {
			writers = append(writers, sink)
		}
	}

	var out io.Writer = io.Discard
	switch len(writers) {
	case 0:
	case 1:
		out = writers[0]
	default:
		out = zerolog.MultiLevelWriter(writers...)
	}

	lc := zerolog.New(out).With().Timestamp()
	if service != "" {
		lc = lc.Str("service", service)
	}
	log.Logger = lc.Logger()
}

// Close flushes and closes the rotated log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if sink == nil {
		return nil
	}
	err := sink.Close()
	sink = nil
	return err
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(s string) Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return InfoLevel
	}
	return lvl
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

//
// ---------- Scoped Loggers ----------

// New returns a child of the global logger tagged with module.
func New(module string) zerolog.Logger {
	return log.Logger.With().Str("module", module).Logger()
}

// WithLogger stores l in ctx.
func WithLogger(ctx context.Context, l *zerolog.Logger) context.Context {
	return l.WithContext(ctx)
}

// From returns the logger stored in ctx or the global one.
func From(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &log.Logger
}

//
// ---------- Shortcuts ----------

func Debug() *zerolog.Event { return log.Debug() }
func Info() *zerolog.Event  { return log.Info() }
func Warn() *zerolog.Event  { return log.Warn() }
func Error() *zerolog.Event { return log.Error() }
