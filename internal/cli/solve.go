package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bvssvni/quickbacktrack/internal/catalog"
	"github.com/bvssvni/quickbacktrack/internal/render"
	"github.com/bvssvni/quickbacktrack/pkg/backtrack"
	"github.com/bvssvni/quickbacktrack/pkg/puzzles/knapsack"
	"github.com/bvssvni/quickbacktrack/pkg/puzzles/queens"
	"github.com/bvssvni/quickbacktrack/pkg/puzzles/sudoku"
)

// ErrNoSolution is returned when the search space is exhausted.
var ErrNoSolution = errors.New("no solution exists")

// SolveOptions holds flags shared by the solve subcommands.
type SolveOptions struct {
	*RootOptions
	Debug     bool
	StepDelay time.Duration
	NoSimple  bool
	ShowDiff  bool
}

func (o *SolveOptions) settings() *backtrack.SolveSettings {
	return backtrack.NewSolveSettings().
		Debug(o.Debug).
		StepDelay(o.StepDelay).
		SolveSimple(!o.NoSimple).
		Trace(os.Stderr)
}

// NewSolveCommand creates the solve command and its per-puzzle
// subcommands.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a puzzle",
	}
	cmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "trace every guess to stderr")
	cmd.PersistentFlags().DurationVar(&opts.StepDelay, "step-delay", 0, "pause between traced guesses, e.g. 500ms")
	cmd.PersistentFlags().BoolVar(&opts.NoSimple, "no-simple", false, "disable forced-move propagation between guesses")
	cmd.PersistentFlags().BoolVar(&opts.ShowDiff, "diff", true, "highlight the cells the solver filled in")

	cmd.AddCommand(
		newSolveSudokuCommand(opts),
		newSolveQueensCommand(opts),
		newSolveKnapsackCommand(opts),
	)
	return cmd
}

func newSolveSudokuCommand(opts *SolveOptions) *cobra.Command {
	var gridFile string
	var heuristic string

	cmd := &cobra.Command{
		Use:   "sudoku [puzzle-id]",
		Short: "Solve a sudoku grid from the catalog or a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadSudoku(cmd, opts, args, gridFile)
			if err != nil {
				return err
			}
			if heuristic == "first" {
				g.Heuristic = sudoku.FirstEmpty
			}

			fmt.Fprintln(cmd.OutOrStdout(), render.Sudoku(g, nil))

			before := backtrack.TakeSnapshot[sudoku.Cell, uint8](g)
			solver := backtrack.NewSolver[sudoku.Cell, uint8](opts.settings())
			outcome, stats := solver.Solve(g)
			logStats(outcome, stats)
			if !outcome.Solved() {
				return ErrNoSolution
			}

			var filled backtrack.Diff[sudoku.Cell, uint8]
			if opts.ShowDiff {
				filled = backtrack.Compare(before, g)
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.Sudoku(g, filled))
			return nil
		},
	}
	cmd.Flags().StringVar(&gridFile, "grid-file", "", "file with 81 digits, '.' or '0' for empty")
	cmd.Flags().StringVar(&heuristic, "heuristic", "fewest", "cell selection: fewest|first")
	return cmd
}

func loadSudoku(cmd *cobra.Command, opts *SolveOptions, args []string, gridFile string) (*sudoku.Grid, error) {
	switch {
	case gridFile != "":
		data, err := os.ReadFile(gridFile)
		if err != nil {
			return nil, fmt.Errorf("read grid: %w", err)
		}
		return sudoku.Parse(string(data))
	case len(args) == 1:
		store := catalog.NewStore(opts.DataDir)
		e, err := store.Load(cmd.Context(), args[0])
		if err != nil {
			return nil, err
		}
		return e.Parse()
	default:
		return nil, errors.New("pass a puzzle ID or --grid-file")
	}
}

func newSolveQueensCommand(opts *SolveOptions) *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "queens",
		Short: "Place n non-attacking queens",
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < 1 {
				return fmt.Errorf("board size %d out of range", size)
			}
			b := queens.New(size)
			before := backtrack.TakeSnapshot[int, int](b)
			solver := backtrack.NewSolver[int, int](opts.settings())
			outcome, stats := solver.Solve(b)
			logStats(outcome, stats)
			if !outcome.Solved() {
				return ErrNoSolution
			}

			var filled backtrack.Diff[int, int]
			if opts.ShowDiff {
				filled = backtrack.Compare(before, b)
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.Queens(b, filled))
			return nil
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 8, "board size")
	return cmd
}

func newSolveKnapsackCommand(opts *SolveOptions) *cobra.Command {
	var itemsFile string

	cmd := &cobra.Command{
		Use:   "knapsack",
		Short: "Pick items meeting a target value within a weight capacity",
		RunE: func(cmd *cobra.Command, args []string) error {
			if itemsFile == "" {
				return errors.New("pass --items with a YAML problem definition")
			}
			s, err := knapsack.LoadProblem(itemsFile)
			if err != nil {
				return err
			}
			solver := backtrack.NewSolver[int, bool](opts.settings())
			outcome, stats := solver.Solve(s)
			logStats(outcome, stats)
			if !outcome.Solved() {
				return ErrNoSolution
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.Knapsack(s))
			return nil
		},
	}
	cmd.Flags().StringVar(&itemsFile, "items", "", "YAML file with capacity, target, and items")
	return cmd
}

func logStats(outcome backtrack.Outcome, stats backtrack.Stats) {
	slog.Info("solve finished",
		"outcome", outcome.String(),
		"guesses", stats.Guesses,
		"backtracks", stats.Backtracks,
		"forced_rounds", stats.ForcedRounds,
		"max_depth", stats.MaxDepth,
		"dur", stats.Duration.Round(time.Microsecond),
	)
}
