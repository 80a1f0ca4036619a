// Package cli wires the quickbacktrack command-line interface: solving the
// bundled puzzle types, generating sudoku puzzles, and managing the puzzle
// catalog.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// RootOptions holds flags shared by every subcommand.
type RootOptions struct {
	Verbose bool
	DataDir string
}

// NewRootCommand builds the root command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "quickbacktrack",
		Short: "Solve constraint puzzles by depth-first backtracking",
		Long: `quickbacktrack solves constraint puzzles (sudoku, n-queens, knapsack)
with a generic backtracking engine. Enable --debug on the solve commands
to watch the guess-by-guess search trace.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			lvl := slog.LevelInfo
			if opts.Verbose {
				lvl = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().StringVar(&opts.DataDir, "data-dir", "./puzzles", "puzzle catalog directory")

	cmd.AddCommand(
		NewSolveCommand(opts),
		NewGenerateCommand(opts),
		NewListCommand(opts),
	)
	return cmd
}
