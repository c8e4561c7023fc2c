package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"obotab/internal/application/commands"
	"obotab/internal/logger"
)

var (
	convertOutput      string
	convertRootID      string
	convertAddCategory bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <source>",
	Short: "Convert an OBO ontology to a TSV table",
	Long: `Convert an ontology in OBO format to a tab-separated table.

The source may be a local file or an http(s) URL. By default the table is
written to stdout; pass --output-path to write a file, or an empty
--output-path to derive the name from the input (hp.obo becomes hp.tsv).

Examples:
  obotab-cli convert hp.obo
  obotab-cli convert hp.obo -o hp.tsv
  obotab-cli convert http://purl.obolibrary.org/obo/hp.obo -o "" -c
  obotab-cli convert hp.obo -r HP:0000118`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		convCmd := commands.NewConvertCommand(GetResolver(), logger.Get(), args[0])
		convCmd.OutputPath = convertOutput
		convCmd.RootID = convertRootID
		convCmd.AddCategory = convertAddCategory
		if err := convCmd.Validate(); err != nil {
			return err
		}

		result, err := convCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if result.OutputPath != "-" {
			fmt.Fprintf(os.Stderr, "Wrote %d terms rooted at %s to %s\n",
				result.Terms, result.RootID, result.OutputPath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVarP(&convertOutput, "output-path", "o", "-", `output file; "-" for stdout, "" to derive from the input name`)
	convertCmd.Flags().StringVarP(&convertRootID, "root-id", "r", "", "convert only the subtree under this term")
	convertCmd.Flags().BoolVarP(&convertAddCategory, "add-category-column", "c", false, "annotate each term with its top-level category")
}
