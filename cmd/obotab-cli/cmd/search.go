package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"obotab/internal/adapters/sqlite"
	"obotab/internal/application"
	"obotab/internal/application/commands"
)

var searchCmd = &cobra.Command{
	Use:   "search <source> <query>",
	Short: "Search an indexed ontology",
	Long: `Search the local index of an ontology by term ID, name, or definition.

Results are ranked by relevance using fuzzy matching. The index must be
built first with "obotab-cli index".

Examples:
  obotab-cli search hp.obo nystagmus
  obotab-cli search hp.obo HP:0000639`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, query := args[0], args[1]
		ctx := context.Background()

		idx := sqlite.NewIndex()
		if err := idx.Open(source); err != nil {
			return err
		}
		defer idx.Close()

		if n, err := idx.Count(); err != nil {
			return err
		} else if n == 0 {
			return fmt.Errorf("%w: run \"obotab-cli index %s\" first", application.ErrIndexMissing, source)
		}

		searchCmd := commands.NewSearchCommand(idx, query)
		results, err := searchCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("No results found")
			return nil
		}

		for _, r := range results {
			fmt.Printf("%s %s\n", r.ID, r.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
