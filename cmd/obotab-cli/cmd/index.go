package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"obotab/internal/adapters/sqlite"
	"obotab/internal/application/commands"
	"obotab/internal/logger"
)

var indexAddCategory bool

var indexCmd = &cobra.Command{
	Use:   "index <source>",
	Short: "Build the local search index for an ontology",
	Long: `Parse an ontology and store its terms in a local SQLite index.

The index lives under the XDG data directory and is keyed by the source
path, so several ontologies can be indexed side by side. Run this again
after the source changes to refresh the index.

Examples:
  obotab-cli index hp.obo
  obotab-cli index http://purl.obolibrary.org/obo/hp.obo -c`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		idx := sqlite.NewIndex()
		if err := idx.Open(args[0]); err != nil {
			return err
		}
		defer idx.Close()

		idxCmd := commands.NewIndexCommand(GetResolver(), idx, logger.Get(), args[0])
		idxCmd.AddCategory = indexAddCategory
		result, err := idxCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.Flags().BoolVarP(&indexAddCategory, "add-category-column", "c", false, "stamp categories onto terms before indexing")
}
