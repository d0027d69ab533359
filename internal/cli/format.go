package cli

import (
	"fmt"
	"strconv"

	"github.com/ryuuhei0729/swimtime/internal/timetoken"
	"github.com/spf13/cobra"
)

// overridden at build time with -ldflags "-X .../internal/cli.version=..."
var version = "dev"

func newFormatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "format [seconds...]",
		Short: "Render times in seconds as display strings",
		Long: `Render times given in seconds the way quick time entry displays them,
next to the full-precision form.

Examples:
  swimtime format 31.2 65.3 125.1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(args))
			for _, arg := range args {
				t, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid seconds %q: %w", arg, err)
				}
				if t < 0 {
					return fmt.Errorf("invalid seconds %q: must not be negative", arg)
				}
				rows = append(rows, []string{
					arg,
					timetoken.Display(t),
					timetoken.Precise(t),
				})
			}
			a.logger.Debugw("Formatted times", "count", len(rows))
			return writeTable(cmd.OutOrStdout(), rows)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "swimtime %s\n", version)
		},
	}
}
