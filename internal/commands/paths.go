package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPathsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Show where fittrack keeps its files",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "📁 Data directory: %s\n", a.paths.ConfigDir)
			fmt.Fprintf(out, "   Routines:       %s\n", a.paths.RoutinesFile)
			fmt.Fprintf(out, "   History:        %s\n", a.paths.HistoryFile)
			if a.cfg.JournalEnabled() {
				fmt.Fprintf(out, "   Journal:        %s\n", a.paths.JournalFile)
			} else {
				fmt.Fprintln(out, "   Journal:        disabled")
			}
			fmt.Fprintf(out, "   Layout:         %s\n", a.cfg.Layout)
		},
	}
}
