// Command solarcalc evaluates solar installation profiles from the command
// line without running the server.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/raterudder/solarledger/pkg/common"
	"github.com/raterudder/solarledger/pkg/log"
)

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "solarcalc",
		Short:         "Project the savings of a California residential solar system",
		Version:       common.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// stdout is reserved for command output
			log.SetDefaultWriter(cmd.ErrOrStderr())
			if verbose {
				log.SetDefaultLogLevel(slog.LevelDebug)
			} else {
				log.SetDefaultLogLevel(slog.LevelWarn)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log the projection of every year to stderr")

	root.AddCommand(newEvaluateCmd(), newRatesCmd(), newDefaultsCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
