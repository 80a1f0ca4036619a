package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/bvssvni/quickbacktrack/internal/catalog"
	"github.com/bvssvni/quickbacktrack/internal/render"
	"github.com/bvssvni/quickbacktrack/pkg/puzzles/sudoku"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	Difficulty string
	Seed       int64
	Name       string
	Save       bool
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a sudoku puzzle with a unique solution",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed := opts.Seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			diff := sudoku.ParseDifficulty(opts.Difficulty)

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			g, err := sudoku.Generate(ctx, seed, diff)
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}
			slog.Info("generated", "difficulty", diff.String(), "seed", seed, "givens", 81-g.EmptyCount())

			fmt.Fprintln(cmd.OutOrStdout(), render.Sudoku(g, nil))
			if !opts.Save {
				return nil
			}

			store := catalog.NewStore(opts.DataDir)
			id, err := store.Save(cmd.Context(), &catalog.Entry{
				Name:       opts.Name,
				Difficulty: diff.String(),
				Grid:       g.Compact(),
				CreatedAt:  time.Now().Unix(),
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "saved as", id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Difficulty, "difficulty", "d", "medium", "easy|medium|hard|expert")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "random seed; 0 picks one from the clock")
	cmd.Flags().StringVar(&opts.Name, "name", "", "optional puzzle name")
	cmd.Flags().BoolVar(&opts.Save, "save", false, "store the puzzle in the catalog")
	return cmd
}
