package cmd_config

import (
	"fmt"

	"github.com/rskv-p/strie/config"
	"github.com/rskv-p/strie/constant"

	"github.com/spf13/cobra"
)

// Cmd prints the collected settings, or a single one by key.
var Cmd = &cobra.Command{
	Use:   "config [key]",
	Short: "Show effective settings",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := config.FromContext(cmd.Context()).Raw()
		if len(args) == 0 {
			return raw.Dump(cmd.OutOrStdout())
		}
		v, ok := raw.Get(args[0])
		if !ok {
			return fmt.Errorf("%w: no setting %q", constant.ErrBadArgs, args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	},
}
