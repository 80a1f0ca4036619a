package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bvssvni/quickbacktrack/internal/catalog"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the puzzles stored in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := catalog.NewStore(rootOpts.DataDir)
			entries, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "catalog is empty")
				return nil
			}
			for _, e := range entries {
				name := e.Name
				if name == "" {
					name = "(unnamed)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-36s  %-7s  %s\n", e.ID, e.Difficulty, name)
			}
			return nil
		},
	}
}
