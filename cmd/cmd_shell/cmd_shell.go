package cmd_shell

import (
	"os"

	"github.com/rskv-p/strie/config"
	"github.com/rskv-p/strie/pkg/x_log"
	"github.com/rskv-p/strie/pkg/x_shell"
	"github.com/rskv-p/strie/pkg/x_trie"
	"github.com/rskv-p/strie/recover"

	"github.com/spf13/cobra"
)

// Cmd reads trie commands from stdin.
var Cmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive set/get/del over an in-memory trie",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := config.FromContext(cmd.Context())
		l := x_log.New("shell")

		released := 0
		opts := append(config.TrieOptions[string](app),
			x_trie.WithReleaseHook(func(string) { released++ }))
		tr := x_trie.New(opts...)
		defer recover.Safe("shell.release", func() {
			tr.Release()
			l.Debug().Int("values", released).Msg("trie released")
		})

		in := cmd.InOrStdin()
		prompt := ""
		if f, ok := in.(*os.File); ok && x_log.IsTerminal(f) {
			prompt = app.Prompt
		}
		sh := x_shell.New(tr, cmd.OutOrStdout(), x_shell.WithPrompt(prompt), x_shell.WithLogger(l))
		l.Debug().Str("session", sh.Session()).Bool("prompt", prompt != "").Msg("shell ready")
		return sh.Run(cmd.Context(), in)
	},
}
