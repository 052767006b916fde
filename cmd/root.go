package cmd

import (
	"os"
	"sync/atomic"

	"github.com/rskv-p/strie/cmd/cmd_bench"
	"github.com/rskv-p/strie/cmd/cmd_config"
	"github.com/rskv-p/strie/cmd/cmd_shell"
	"github.com/rskv-p/strie/config"
	"github.com/rskv-p/strie/constant"
	"github.com/rskv-p/strie/pkg/x_log"
	"github.com/rskv-p/strie/recover"

	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string

	// set by recover.OnPanic; a contained panic still fails the run
	panicked atomic.Bool
)

var rootCmd = &cobra.Command{
	Use:           constant.ServiceName,
	Short:         "Child-sibling trie toolkit",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		raw, err := config.Collect(configPath)
		if err != nil {
			return err
		}
		app, err := config.FromConfig(raw)
		if err != nil {
			return err
		}
		if logLevel != "" {
			app.Log.Level = logLevel
			if err := app.Validate(); err != nil {
				return err
			}
		}
		x_log.InitWithConfig(&app.Log, constant.ServiceName)
		recover.SetLogger(x_log.New("recover"))
		x_log.Debug().Str("config", configPath).Strs("keys", raw.Keys()).Msg("settings loaded")

		cmd.SetContext(config.WithApp(cmd.Context(), app))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = x_log.Close()
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := result(rootCmd.Execute()); err != nil {
		x_log.Error().Err(err).Msg("command failed")
		_ = x_log.Close()
		os.Exit(1)
	}
}

// result folds a recovered panic into the command error.
func result(err error) error {
	if err == nil && panicked.Load() {
		return constant.ErrRecovered
	}
	return err
}

func init() {
	recover.OnPanic = func(service, function string, _ any) {
		panicked.Store(true)
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to JSON config (default $STRIE_CONFIG or ./strie.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(cmd_bench.Cmd)
	rootCmd.AddCommand(cmd_config.Cmd)
	rootCmd.AddCommand(cmd_shell.Cmd)
}
