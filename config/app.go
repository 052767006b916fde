// file: strie/config/app.go
package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/rskv-p/strie/constant"
	"github.com/rskv-p/strie/pkg/x_log"
	"github.com/rskv-p/strie/pkg/x_trie"
)

// App holds the typed settings of the strie command.
type App struct {
	LogLevel       string       `mapstructure:"log_level" json:"log_level,omitempty"` // overrides Log.Level
	Log            x_log.Config `mapstructure:"log" json:"log"`
	BenchCount     int          `mapstructure:"bench_count" json:"bench_count"`
	BenchKeyFormat string       `mapstructure:"bench_key_format" json:"bench_key_format"`
	BenchValue     string       `mapstructure:"bench_value" json:"bench_value"`
	RootByte       string       `mapstructure:"root_byte" json:"root_byte,omitempty"` // legacy matchable root
	Prompt         string       `mapstructure:"prompt" json:"prompt"`

	raw *Config
}

// Default returns the built-in settings.
func Default() *App {
	return &App{
		Log:            x_log.DefaultConfig(),
		BenchCount:     constant.DefaultBenchCount,
		BenchKeyFormat: constant.DefaultBenchKeyFormat,
		BenchValue:     constant.DefaultBenchValue,
		Prompt:         constant.DefaultPrompt,
	}
}

// Collect gathers the raw settings: built-in defaults, then the JSON file
// at path (optional; STRIE_CONFIG or ./strie.json when empty), then
// STRIE_* variables.
func Collect(path string) (*Config, error) {
	if path == "" {
		path = GetEnvStr(constant.EnvConfigPath, constant.DefaultConfigFile)
	}
	return New(
		WithDefaults(defaultValues()),
		FromOptionalJSON(path),
		FromEnv(constant.EnvPrefix),
	)
}

// defaultValues are the top-level defaults. Nested log settings are
// merged field by field in FromConfig.
func defaultValues() map[string]any {
	return map[string]any{
		"bench_count":      constant.DefaultBenchCount,
		"bench_key_format": constant.DefaultBenchKeyFormat,
		"bench_value":      constant.DefaultBenchValue,
		"prompt":           constant.DefaultPrompt,
	}
}

// FromConfig decodes c on top of the defaults and validates the result.
func FromConfig(c *Config) (*App, error) {
	app := Default()
	if err := c.Decode(app); err != nil {
		return nil, err
	}
	if app.LogLevel != "" {
		app.Log.Level = app.LogLevel
	}
	x_log.ApplyDefaults(&app.Log)
	if err := app.Validate(); err != nil {
		return nil, err
	}
	app.raw = c
	return app, nil
}

// Raw returns the settings App was decoded from. It is empty for an App
// that was not built by FromConfig.
func (a *App) Raw() *Config {
	if a.raw == nil {
		return &Config{values: map[string]any{}}
	}
	return a.raw
}

// Validate checks settings for usable values.
func (a *App) Validate() error {
	var bad []string
	if a.BenchCount <= 0 {
		bad = append(bad, fmt.Sprintf("bench_count(%d)", a.BenchCount))
	}
	if strings.Count(a.BenchKeyFormat, "%") != 1 || !strings.Contains(a.BenchKeyFormat, "%d") {
		bad = append(bad, fmt.Sprintf("bench_key_format(%q)", a.BenchKeyFormat))
	}
	if len(a.RootByte) > 1 {
		bad = append(bad, fmt.Sprintf("root_byte(%q)", a.RootByte))
	}
	switch strings.ToLower(a.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		bad = append(bad, fmt.Sprintf("log.level(%q)", a.Log.Level))
	}
	if len(bad) > 0 {
		return fmt.Errorf("%w: %s", constant.ErrInvalidConfig, strings.Join(bad, ", "))
	}
	return nil
}

// HasRootByte reports whether the legacy matchable root is configured.
func (a *App) HasRootByte() bool {
	return len(a.RootByte) == 1
}

// TrieOptions translates the settings into trie construction options.
func TrieOptions[V any](a *App) []x_trie.Option[V] {
	var opts []x_trie.Option[V]
	if a.HasRootByte() {
		opts = append(opts, x_trie.WithRootByte[V](a.RootByte[0]))
	}
	return opts
}

// ----------------------------------------------------
// Context
// ----------------------------------------------------

type appKey struct{}

// WithApp stores a in ctx.
func WithApp(ctx context.Context, a *App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// FromContext returns the App stored in ctx or the defaults.
func FromContext(ctx context.Context) *App {
	if a, ok := ctx.Value(appKey{}).(*App); ok && a != nil {
		return a
	}
	return Default()
}
