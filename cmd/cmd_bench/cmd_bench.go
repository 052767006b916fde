package cmd_bench

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rskv-p/strie/config"
	"github.com/rskv-p/strie/pkg/x_bench"
	"github.com/rskv-p/strie/pkg/x_log"
	"github.com/rskv-p/strie/recover"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	count   int
	asJSON  bool
	heading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00BFFF"))
)

// Cmd times insert, lookup and delete on a trie and on a Go map.
var Cmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the trie against a map",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := config.FromContext(cmd.Context())
		opts := x_bench.Options{
			Count:       app.BenchCount,
			KeyFormat:   app.BenchKeyFormat,
			Value:       app.BenchValue,
			TrieOptions: config.TrieOptions[string](app),
		}
		if cmd.Flags().Changed("count") {
			opts.Count = count
		}

		l := x_log.New("bench")
		ctx := x_log.WithLogger(cmd.Context(), &l)

		var results []x_bench.Result
		run := recover.WrapRecover("bench", "run", func(ctx context.Context) error {
			var err error
			results, err = x_bench.Run(ctx, opts)
			return err
		})
		if err := run(ctx); err != nil {
			return fmt.Errorf("bench failed: %w", err)
		}
		l.Info().Int("count", opts.Count).Msg("bench finished")

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		}
		printResults(cmd.OutOrStdout(), opts.Count, results)
		return nil
	},
}

func printResults(w io.Writer, n int, results []x_bench.Result) {
	fmt.Fprintln(w, heading.Render(fmt.Sprintf("%d keys", n)))
	for _, r := range results {
		fmt.Fprintf(w, "%-5s", r.Store)
		for _, p := range r.Phases {
			fmt.Fprintf(w, "  %s %-12s", p.Name, p.Took)
		}
		fmt.Fprintf(w, "  total %s\n", r.Total)
		if r.Peak != nil {
			fmt.Fprintf(w, "      nodes %d (peak) / %d (after delete), max depth %d, longest chain %d\n",
				r.Peak.Nodes, r.Left.Nodes, r.Peak.MaxDepth, r.Peak.MaxChain)
		}
	}
}

func init() {
	Cmd.Flags().IntVarP(&count, "count", "n", 0, "number of keys (default from config)")
	Cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
}
